package mapper

import (
	"sort"

	"github.com/oxrcfg/oxrcfg/log"
)

// Export returns the module's settings keyed by name, mapped attributes as labels.
func (m *Mapper) Export(module string) (map[string]any, error) {
	values, err := m.ModuleConfig(module)
	if err != nil {
		return nil, err
	}

	exported := make(map[string]any, len(values))
	for _, v := range values {
		mapped, err := m.MapData(v)
		if err != nil {
			return nil, err
		}
		exported[mapped.Name] = mapped.Data
	}
	return exported, nil
}

// Report is the outcome of Apply.
type Report struct {
	Applied []string
	Failed  map[string]error
}

// Apply writes every entry of values with SetValue, in name order.
// A failing entry is recorded and the remaining entries are still applied.
func (m *Mapper) Apply(module string, values map[string]any) Report {
	report := Report{Failed: make(map[string]error)}

	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		err := m.SetValue(module, name, toText(values[name]))
		if err != nil {
			log.WithField("attr", name).Warn(err)
			report.Failed[name] = err
			continue
		}
		report.Applied = append(report.Applied, name)
	}

	return report
}
