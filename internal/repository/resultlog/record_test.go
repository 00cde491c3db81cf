package resultlog

import "testing"

func TestDriver_IsValid(t *testing.T) {
	for _, d := range []Driver{DriverFile, DriverRedis, DriverSQLite, DriverNone} {
		if !d.IsValid() {
			t.Errorf("%q should be valid", d)
		}
	}
	if Driver("kafka").IsValid() {
		t.Error("kafka should not be valid")
	}
}
