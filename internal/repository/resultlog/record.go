// Package resultlog implements the append-only sinks finished analyses are
// written to.
package resultlog

// Driver names a sink implementation.
type Driver string

// Supported drivers.
const (
	DriverFile   Driver = "file"
	DriverRedis  Driver = "redis"
	DriverSQLite Driver = "sqlite"
	DriverNone   Driver = "none"
)

// IsValid reports whether d names a known sink.
func (d Driver) IsValid() bool {
	switch d {
	case DriverFile, DriverRedis, DriverSQLite, DriverNone:
		return true
	}
	return false
}

