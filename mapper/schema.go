package mapper

import (
	"github.com/invopop/jsonschema"
	"github.com/oxrcfg/oxrcfg/constant"
	"github.com/oxrcfg/oxrcfg/domain"
	"github.com/samber/lo"
)

// Schema describes the files written by SaveConfig and read by ReadFromFile.
// Mapped attributes are restricted to their labels; anything else is accepted.
func Schema() *jsonschema.Schema {
	properties := jsonschema.NewProperties()
	for _, name := range domain.Attributes() {
		d, _ := domain.Lookup(name)
		properties.Set(name, &jsonschema.Schema{
			Type:        "string",
			Title:       d.Name,
			Enum:        lo.ToAnySlice(d.Labels()),
			Description: "Stored as the matching " + d.Name + " code",
		})
	}

	return &jsonschema.Schema{
		Version:     jsonschema.Version,
		ID:          jsonschema.ID("https://" + constant.App + "/settings.schema.json"),
		Title:       "OpenXR Toolkit module settings",
		Type:        "object",
		Properties:  properties,
		Description: "Attribute name to label, or to the raw value for attributes without a domain",
	}
}
