package telemetry

import (
	"fmt"
	"strings"
)

// UnknownExporterError is returned for an exporter name that is not in Exporters.
type UnknownExporterError struct {
	Kind string
	Name string
}

func (err UnknownExporterError) Error() string {
	return fmt.Sprintf("unknown %s exporter %q, supported exporters: %s", err.Kind, err.Name, strings.Join(Exporters, ", "))
}
