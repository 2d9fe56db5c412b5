package krill

import "testing"

func TestThresholds(t *testing.T) {
	J := EarthMoon.Thresholds()
	for i := 0; i < 3; i++ {
		if J[i] <= J[i+1] {
			t.Fatalf("J(L%d)=%f <= J(L%d)=%f", i+1, J[i], i+2, J[i+1])
		}
	}
	if J[3] != J[4] {
		t.Fatalf("J(L4)=%f != J(L5)=%f", J[3], J[4])
	}
}

func TestRealm(t *testing.T) {
	J := EarthMoon.Thresholds()
	for _, exp := range []struct {
		J     float64
		realm Realm
	}{
		// Representative values of each band.
		{3.2, RealmClosed},
		{3.180, RealmL1},
		{3.10, RealmL2},
		{2.99, RealmL3},
		{2.9, RealmOpen},
		// Boundaries belong to the lower band.
		{J[0], RealmL1},
		{J[1], RealmL2},
		{J[2], RealmL3},
		{J[3], RealmOpen},
	} {
		if r := EarthMoon.Realm(exp.J); r != exp.realm {
			t.Fatalf("J=%f: realm %s != %s", exp.J, r, exp.realm)
		}
	}
	if RealmL2.String() != "L2 open" || Realm(0).String() != "Realm(0)" {
		t.Fatalf("unexpected strings %s %s", RealmL2, Realm(0))
	}
}

func TestAccessible(t *testing.T) {
	J1 := EarthMoon.Thresholds()[0]
	rx, ry, _ := EarthMoon.Position(L1)
	if !EarthMoon.Accessible(rx, ry, J1-1e-9) {
		t.Fatal("L1 should be accessible just below J(L1)")
	}
	if EarthMoon.Accessible(rx, ry, J1+1e-3) {
		t.Fatal("L1 should not be accessible above J(L1)")
	}
	// Close to the primary and far away are always accessible.
	μ := EarthMoon.MassRatio()
	if !EarthMoon.Accessible(-μ+0.1, 0, 3.2) || !EarthMoon.Accessible(10, 0, 3.2) {
		t.Fatal("primary vicinity and exterior should be accessible")
	}
	rx, ry, _ = EarthMoon.Position(L4)
	if EarthMoon.Accessible(rx, ry, 3.2) {
		t.Fatal("L4 should be forbidden for J=3.2")
	}
}
