// Package uischema loads presentation overrides for the application form:
// form chrome (title, submit label, success copy), the preferred location set
// and per-field labels, placeholders and help text. Documents are JSON or
// YAML. The schema package stays unaware of these overlays; callers opt in by
// decorating the projected FormModel.
package uischema
