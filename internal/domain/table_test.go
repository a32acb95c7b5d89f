package domain

import (
	"reflect"
	"testing"
)

func TestDeviceTableSet(t *testing.T) {
	t.Run("keeps insertion order", func(t *testing.T) {
		table := NewDeviceTable()
		table.Set("switch2", "1.1.1.1")
		table.Set("router1", "2.2.2.2")
		table.Set("switch1", "3.3.3.3")

		want := []string{"switch2", "router1", "switch1"}
		if got := table.Names(); !reflect.DeepEqual(got, want) {
			t.Errorf("Names() = %v, want %v", got, want)
		}
	})

	t.Run("overwrite keeps position and last value", func(t *testing.T) {
		table := NewDeviceTable()
		table.Set("router1", "10.0.0.1")
		table.Set("router2", "10.0.0.2")
		table.Set("router1", "10.0.0.9")

		if table.Len() != 2 {
			t.Fatalf("Len() = %d, want 2", table.Len())
		}
		if got := table.Names(); !reflect.DeepEqual(got, []string{"router1", "router2"}) {
			t.Errorf("Names() = %v", got)
		}
		if ip, _ := table.Get("router1"); ip != "10.0.0.9" {
			t.Errorf("Get(router1) = %s, want 10.0.0.9", ip)
		}
	})

	t.Run("names copy is independent", func(t *testing.T) {
		table := NewDeviceTable()
		table.Set("a", "1")
		names := table.Names()
		names[0] = "b"
		if !table.Has("a") || table.Names()[0] != "a" {
			t.Error("mutating Names() result changed the table")
		}
	})
}

func TestDeviceTableNil(t *testing.T) {
	var table *DeviceTable
	if table.Len() != 0 {
		t.Error("nil table should have length 0")
	}
	if table.Names() != nil {
		t.Error("nil table should have no names")
	}
	table.Each(func(name, ip string) {
		t.Error("Each on nil table should not call fn")
	})
}

func TestDeviceTableClone(t *testing.T) {
	orig := DefaultRouters()
	clone := orig.Clone()
	clone.Set("router1", "1.2.3.4")

	if ip, _ := orig.Get("router1"); ip != "10.10.10.1" {
		t.Errorf("original changed to %s", ip)
	}
	if !reflect.DeepEqual(orig.Names(), clone.Names()) {
		t.Error("clone should keep order")
	}
}

func TestDefaults(t *testing.T) {
	if got := DefaultRouters().Len(); got != 3 {
		t.Errorf("DefaultRouters().Len() = %d, want 3", got)
	}
	if got := DefaultSwitches().Len(); got != 9 {
		t.Errorf("DefaultSwitches().Len() = %d, want 9", got)
	}
	if ip, _ := Defaults(ClassSwitch).Get("switch9"); ip != "30.30.30.4" {
		t.Errorf("switch9 = %s, want 30.30.30.4", ip)
	}
	if Defaults("printer").Len() != 0 {
		t.Error("unknown class should give an empty table")
	}
}
