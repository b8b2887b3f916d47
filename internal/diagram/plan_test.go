package diagram

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func samplePlan() PlanData {
	return PlanData{
		Walls: []PlanWall{
			{Label: "EW1", X: 5, Y: 0, Length: 4, EastWest: true},
			{Label: "EW2", X: 5, Y: 10, Length: 4, EastWest: true},
			{Label: "NS1", X: 0, Y: 5, Length: 4},
			{Label: "NS2", X: 10, Y: 5, Length: 4},
		},
		CoRX: 5, CoRY: 5,
		CoMX: 6, CoMY: 7,
	}
}

func TestDrawASCIIPlan(t *testing.T) {
	out := DrawASCIIPlan(samplePlan())

	for _, want := range []string{"R", "M", "=", "|", "EW1", "NS2", "Legend"} {
		if !strings.Contains(out, want) {
			t.Fatalf("plan output missing %q:\n%s", want, out)
		}
	}
}

func TestDrawASCIIPlanUndefinedCoR(t *testing.T) {
	data := samplePlan()
	data.CoRX = math.NaN()
	data.CoRY = math.NaN()

	out := DrawASCIIPlan(data)
	if strings.Contains(out, "R") && !strings.Contains(out, "Legend") {
		t.Fatalf("unexpected output:\n%s", out)
	}
	// the M marker must still render
	if !strings.Contains(out, "M") {
		t.Fatalf("mass center marker missing:\n%s", out)
	}
}

func TestExportPlanDiagram(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.png")
	if err := ExportPlanDiagram(samplePlan(), path); err != nil {
		t.Fatalf("export failed: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("no output file: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("exported file is empty")
	}
}
