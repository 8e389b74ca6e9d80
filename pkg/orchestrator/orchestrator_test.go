package orchestrator

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-applyform/pkg/model"
	"github.com/goliatone/go-applyform/pkg/schema"
	"github.com/goliatone/go-applyform/pkg/testsupport"
	"github.com/goliatone/go-applyform/pkg/uischema"
)

func TestNew_Defaults(t *testing.T) {
	o, err := New()
	require.NoError(t, err)

	assert.Equal(t, []string{"html", "text"}, o.Renderers())
	fm := o.FormModel()
	assert.Equal(t, "Join our team", fm.Title)
	name, ok := fm.Field("name")
	require.True(t, ok)
	assert.Equal(t, "Full name", name.Label)
	assert.Equal(t, "text", name.UIHints["widget"])
	message, _ := fm.Field("message")
	assert.Equal(t, "textarea", message.UIHints["widget"])
	assert.Equal(t, schema.DefaultLocations, o.Schema().Locations())

	ct, err := o.ContentType("")
	require.NoError(t, err)
	assert.Contains(t, ct, "text/html")
}

func TestNew_LocationsPrecedence(t *testing.T) {
	doc := uischema.Document{Locations: []string{"Goa"}}

	o, err := New(WithUIDocument(doc))
	require.NoError(t, err)
	assert.Equal(t, []string{"Goa"}, o.Schema().Locations())

	o, err = New(WithUIDocument(doc), WithLocations("Kochi", "Pune"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Kochi", "Pune"}, o.Schema().Locations())
	field, _ := o.FormModel().Field("preferredLocation")
	assert.Equal(t, []string{"Kochi", "Pune"}, field.Enum)
}

func TestNew_UISchemaFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ui.yaml")
	require.NoError(t, os.WriteFile(path, []byte("form:\n  title: Careers\nfields:\n  email:\n    label: Work email\n"), 0o600))

	o, err := New(WithUISchemaFile(path))
	require.NoError(t, err)
	assert.Equal(t, "Careers", o.FormModel().Title)
	email, _ := o.FormModel().Field("email")
	assert.Equal(t, "Work email", email.Label)
}

func TestNew_Errors(t *testing.T) {
	_, err := New(WithUISchemaFile(filepath.Join(t.TempDir(), "missing.yaml")))
	require.Error(t, err)

	_, err = New(WithUIDocument(uischema.Document{Fields: map[string]uischema.FieldConfig{"salary": {}}}))
	require.Error(t, err)

	_, err = New(WithUIDecorators(model.DecoratorFunc(func(*model.FormModel) error {
		return assert.AnError
	})))
	require.ErrorIs(t, err, assert.AnError)
}

func TestRender_SnapshotsAcrossRenderers(t *testing.T) {
	o, err := New()
	require.NoError(t, err)
	ctrl := o.NewController()
	require.NoError(t, ctrl.Prefill(map[string]string{"name": "A"}))
	require.Error(t, ctrl.Submit())

	out, err := o.Render(context.Background(), Request{Renderer: "text", Snapshot: ctrl.Snapshot()})
	require.NoError(t, err)
	assert.Contains(t, string(out), "Name must be at least 2 characters")

	out, err = o.Render(context.Background(), Request{Snapshot: ctrl.Snapshot()})
	require.NoError(t, err)
	assert.Contains(t, string(out), `aria-invalid="true"`)

	require.NoError(t, ctrl.Prefill(testsupport.ValidInput()))
	require.NoError(t, ctrl.Submit())
	out, err = o.Render(context.Background(), Request{Renderer: "text", Snapshot: ctrl.Snapshot()})
	require.NoError(t, err)
	assert.Contains(t, string(out), "Application received")

	_, err = o.Render(context.Background(), Request{Renderer: "pdf"})
	require.Error(t, err)
}

func TestFormModel_ReturnsCopy(t *testing.T) {
	o, err := New()
	require.NoError(t, err)
	fm := o.FormModel()
	fm.Fields[0].Label = "changed"
	assert.NotEqual(t, "changed", o.FormModel().Fields[0].Label)
}
