package lander

import (
	"testing"

	"github.com/akmonengine/lander/actor"
	"github.com/go-gl/mathgl/mgl64"
)

type drawCall struct {
	model   mgl64.Mat4
	texture actor.Texture
	region  actor.Region
}

type recordingRenderer struct {
	calls []drawCall
}

func (r *recordingRenderer) Draw(model mgl64.Mat4, texture actor.Texture, region actor.Region) {
	r.calls = append(r.calls, drawCall{model: model, texture: texture, region: region})
}

func (r *recordingRenderer) paths(t *testing.T) []string {
	t.Helper()
	paths := make([]string, 0, len(r.calls))
	for _, call := range r.calls {
		paths = append(paths, texturePath(t, call.texture))
	}
	return paths
}

func levelDrawOrder() []string {
	order := []string{BACKGROUND_TEXTURE, SUBMARINE_TEXTURE}
	for range platformLayout {
		order = append(order, PLATFORM_TEXTURE)
	}
	for range hazardLayout {
		order = append(order, HAZARD_TEXTURE)
	}
	return order
}

func TestGame_RenderOrder(t *testing.T) {
	tests := []struct {
		name    string
		outcome actor.Outcome
		overlay []string
	}{
		{"running", actor.Outcome{}, nil},
		{"won", actor.Outcome{Ended: true, Won: true}, []string{WIN_MESSAGE_TEXTURE}},
		{"lost", actor.Outcome{Ended: true, Lost: true}, []string{LOSE_MESSAGE_TEXTURE}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, _ := createTestGame(t)
			g.Outcome = tt.outcome
			r := &recordingRenderer{}

			g.Render(r)

			want := append(levelDrawOrder(), tt.overlay...)
			got := r.paths(t)
			if len(got) != len(want) {
				t.Fatalf("draw calls = %v, want %v", got, want)
			}
			for i := range want {
				if got[i] != want[i] {
					t.Errorf("draw %d = %q, want %q", i, got[i], want[i])
				}
			}
		})
	}
}

func TestGame_RenderUsesModels(t *testing.T) {
	g, _ := createTestGame(t)
	r := &recordingRenderer{}

	g.Render(r)

	if r.calls[0].model != g.Background.Model() {
		t.Error("background drawn with a stale model")
	}
	if r.calls[1].model != g.Player.Model() {
		t.Error("player drawn with a stale model")
	}
	for i, call := range r.calls {
		if call.region != actor.FullRegion {
			t.Errorf("draw %d region = %v, want the full texture", i, call.region)
		}
	}

	// background is scaled to cover the view
	corner := g.Background.Model().Mul4x1(mgl64.Vec4{0.5, 0.5, 0, 1}).Vec3()
	if !corner.ApproxEqualThreshold(mgl64.Vec3{7.9, 4, 0}, 1e-12) {
		t.Errorf("background corner = %v, want (7.9, 4, 0)", corner)
	}
}
