// Package model defines the typed form model consumed by renderers and
// exporters. The application schema projects its closed field table into a
// FormModel; presentation overrides (labels, placeholders, help text) are
// applied afterwards through Decorators. Validation rules expose canonical
// identifiers (min/max, minLength, format, oneOf) with string parameters so
// renderers can map them onto HTML attributes or prompt hints without parsing
// the schema itself.
package model
