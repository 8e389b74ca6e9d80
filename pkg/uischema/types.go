package uischema

// Document is a parsed UI schema file.
type Document struct {
	Source    string                 `json:"-" yaml:"-"`
	Form      FormConfig             `json:"form" yaml:"form"`
	Locations []string               `json:"locations,omitempty" yaml:"locations,omitempty"`
	Fields    map[string]FieldConfig `json:"fields,omitempty" yaml:"fields,omitempty"`
}

// FormConfig captures the copy around the form and the success view.
type FormConfig struct {
	Title          string `json:"title,omitempty" yaml:"title,omitempty"`
	Description    string `json:"description,omitempty" yaml:"description,omitempty"`
	SubmitLabel    string `json:"submitLabel,omitempty" yaml:"submitLabel,omitempty"`
	SuccessTitle   string `json:"successTitle,omitempty" yaml:"successTitle,omitempty"`
	SuccessMessage string `json:"successMessage,omitempty" yaml:"successMessage,omitempty"`
}

// FieldConfig customises how a single field is presented.
type FieldConfig struct {
	Label       string            `json:"label,omitempty" yaml:"label,omitempty"`
	Placeholder string            `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	HelpText    string            `json:"helpText,omitempty" yaml:"helpText,omitempty"`
	Widget      string            `json:"widget,omitempty" yaml:"widget,omitempty"`
	UIHints     map[string]string `json:"uiHints,omitempty" yaml:"uiHints,omitempty"`
}

const (
	metadataSubmitLabel    = "submitLabel"
	metadataSuccessTitle   = "successTitle"
	metadataSuccessMessage = "successMessage"
	hintWidget             = "widget"
)

// Metadata keys renderers read from FormModel.Metadata.
const (
	MetadataSubmitLabel    = metadataSubmitLabel
	MetadataSuccessTitle   = metadataSuccessTitle
	MetadataSuccessMessage = metadataSuccessMessage
	HintWidget             = hintWidget
)
