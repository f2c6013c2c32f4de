package field

import (
	"math/rand"
	"testing"

	"github.com/google/uuid"
)

func TestTypeForRollBoundaries(t *testing.T) {
	tests := []struct {
		roll     int
		expected ObjectType
	}{
		{0, Obstacle},
		{49, Obstacle},
		{50, Reward},
		{79, Reward},
		{80, Hazard},
		{99, Hazard},
	}

	for _, tc := range tests {
		if got := TypeForRoll(tc.roll); got != tc.expected {
			t.Errorf("TypeForRoll(%d) = %v, expected %v", tc.roll, got, tc.expected)
		}
	}
}

func TestFromRollPointsAndTags(t *testing.T) {
	tests := []struct {
		roll   int
		points int
		tag    string
	}{
		{10, 5, "obstacle"},
		{60, 50, "reward"},
		{90, -50, "hazard"},
	}

	for _, tc := range tests {
		obj := FromRoll(uuid.New(), tc.roll)
		if obj.Points != tc.points {
			t.Errorf("roll %d: Points = %d, expected %d", tc.roll, obj.Points, tc.points)
		}
		if obj.VisualTag != tc.tag {
			t.Errorf("roll %d: VisualTag = %q, expected %q", tc.roll, obj.VisualTag, tc.tag)
		}
	}
}

func TestRemovable(t *testing.T) {
	if Obstacle.Removable() {
		t.Error("obstacles should stay on the field")
	}
	if !Reward.Removable() || !Hazard.Removable() {
		t.Error("rewards and hazards should be removed on contact")
	}
}

func TestCreateRandomDistribution(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	counts := make(map[ObjectType]int)
	const n = 10000

	for range n {
		obj := CreateRandom(rng)
		if obj.Points != obj.Type.Points() {
			t.Fatalf("object %v has points %d", obj.Type, obj.Points)
		}
		counts[obj.Type]++
	}

	// Loose bounds around 50/30/20.
	check := func(typ ObjectType, lo, hi int) {
		if c := counts[typ]; c < lo || c > hi {
			t.Errorf("%v count = %d, expected within [%d, %d]", typ, c, lo, hi)
		}
	}
	check(Obstacle, 4700, 5300)
	check(Reward, 2700, 3300)
	check(Hazard, 1700, 2300)
}

func TestCreateRandomDeterministic(t *testing.T) {
	a := rand.New(rand.NewSource(42))
	b := rand.New(rand.NewSource(42))

	for i := range 20 {
		oa, ob := CreateRandom(a), CreateRandom(b)
		if oa != ob {
			t.Fatalf("object %d differs for equal seeds: %+v vs %+v", i, oa, ob)
		}
	}
}

func TestCreateRandomUniqueIDs(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	seen := make(map[uuid.UUID]bool)
	for range 100 {
		obj := CreateRandom(rng)
		if seen[obj.ID] {
			t.Fatalf("duplicate id %v", obj.ID)
		}
		seen[obj.ID] = true
	}
}
