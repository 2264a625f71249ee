package tower

import (
	"testing"

	"github.com/vovakirdan/tower-climber/internal/core"
)

func TestMachinegunnerBurstTiming(t *testing.T) {
	m := NewMachinegunner(600, 170, testConfig())

	var fired []int
	for tick := 1; tick <= 19; tick++ {
		if _, ok := m.TryShoot(0.25); ok {
			fired = append(fired, tick)
		}
	}

	// Six shots one interval apart, a 3s rest, then the next burst
	want := []int{1, 2, 3, 4, 5, 6, 19}
	if len(fired) != len(want) {
		t.Fatalf("shots at ticks %v, expected %v", fired, want)
	}
	for i := range want {
		if fired[i] != want[i] {
			t.Errorf("shot %d at tick %d, expected %d", i+1, fired[i], want[i])
		}
	}
}

func TestMachinegunnerCooldownFlag(t *testing.T) {
	m := NewMachinegunner(600, 170, testConfig())

	for range 6 {
		m.TryShoot(0.25)
	}
	if !m.InCooldown {
		t.Error("InCooldown after a full burst = false, expected true")
	}
	if m.BurstShots != 6 {
		t.Errorf("BurstShots = %d, expected 6", m.BurstShots)
	}
}

func TestMachinegunnerFacesNearestLivePlayer(t *testing.T) {
	cfg := testConfig()
	empty := terrainOf(nil, nil, nil)
	m := NewMachinegunner(600, 170, cfg)

	near := NewPlayer(800, 160, core.Player1, cfg)
	far := NewPlayer(100, 160, core.Player2, cfg)
	players := []*Player{far, near}

	m.Update(empty, players, 0.01)
	if m.Facing != 1 {
		t.Errorf("Facing = %d, expected 1", m.Facing)
	}

	near.Kill()
	m.Update(empty, players, 0.01)
	if m.Facing != -1 {
		t.Errorf("Facing after nearest died = %d, expected -1", m.Facing)
	}

	far.Kill()
	m.Update(empty, players, 0.01)
	if m.Facing != -1 {
		t.Errorf("Facing with no live players = %d, expected unchanged -1", m.Facing)
	}
}

func TestMachinegunnerSettlesOnFloor(t *testing.T) {
	terrain := terrainOf([]core.Rect{wideFloor}, nil, nil)
	m := NewMachinegunner(600, 100, testConfig())

	for range 30 {
		m.Update(terrain, nil, 1.0/60)
	}
	if !m.OnGround || m.Bounds().Bottom() != wideFloor.Y {
		t.Errorf("OnGround=%v Bottom()=%d, expected true and %d", m.OnGround, m.Bounds().Bottom(), wideFloor.Y)
	}
	if m.Body.X != 600 {
		t.Errorf("X = %v, expected 600", m.Body.X)
	}
}
