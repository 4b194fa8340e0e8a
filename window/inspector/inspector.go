// Package inspector provides a Dear ImGui panel showing live session
// statistics over the ebiten window.
package inspector

import (
	"fmt"
	"time"

	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/tetrad/loop"
	"github.com/plus3/tetrad/tetris"
)

// Inspector renders session statistics with ImGui. It implements the
// window package's Overlay interface.
type Inspector struct {
	backend *ebitenbackend.EbitenBackend
	frames  *FrameHistory
}

// New creates the ImGui backend for a window of the given size.
func New(title string, width, height, historyFrames int) *Inspector {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")

	return &Inspector{
		backend: backend,
		frames:  NewFrameHistory(historyFrames),
	}
}

// Update builds this frame's panels from snap and the scheduler stats.
func (in *Inspector) Update(snap tetris.Snapshot, stats *loop.SchedulerStats, dt time.Duration) {
	in.frames.Record(dt)

	in.backend.BeginFrame()
	in.render(snap)
	renderSystems(stats)
	in.backend.EndFrame()
}

func (in *Inspector) Draw(screen *ebiten.Image) {
	in.backend.Draw(screen)
}

func (in *Inspector) Layout(width, height int) {
	in.backend.Layout(width, height)
}

func (in *Inspector) render(snap tetris.Snapshot) {
	if !imgui.BeginV("Session", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("State: %s", snap.State))
	imgui.Text(fmt.Sprintf("Score: %d  Lines: %d  Level: %d", snap.Score, snap.Lines, snap.Level))
	imgui.Text(fmt.Sprintf("Drop Interval: %s", snap.DropInterval))
	imgui.Text(fmt.Sprintf("Active: %s at %d,%d (rotation %d)", snap.Active.Variant, snap.Active.Row, snap.Active.Col, snap.Active.Rotation))

	avg := in.frames.Average()
	fps := float32(0)
	if avg > 0 {
		fps = 1000 / avg
	}
	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avg, fps))

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	samples := in.frames.Samples()
	imgui.PlotLinesFloatPtr("##frametime", &samples[0], int32(len(samples)))

	if imgui.TreeNodeStr("Line Clears") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("ClearsTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Rows")
			imgui.TableSetupColumn("Count")
			imgui.TableHeadersRow()

			for rows, n := range snap.Stats.Clears {
				if rows == 0 {
					continue
				}
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(clearName(rows))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", n))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Pieces") {
		for _, v := range tetris.Variants {
			imgui.BulletText(fmt.Sprintf("%s: %d", v, snap.Stats.SpawnedOf(v)))
		}
		imgui.BulletText(fmt.Sprintf("Locked: %d", snap.Stats.Locked))
		imgui.BulletText(fmt.Sprintf("Holds: %d", snap.Stats.Holds))
		imgui.BulletText(fmt.Sprintf("Hard Drops: %d (%d rows)", snap.Stats.HardDrops, snap.Stats.HardDropRows))
		imgui.BulletText(fmt.Sprintf("Soft Drop Rows: %d", snap.Stats.SoftDropRows))
		imgui.TreePop()
	}

	imgui.End()
}

func renderSystems(stats *loop.SchedulerStats) {
	if !imgui.BeginV("Systems", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Frames: %d", stats.Frames))
	imgui.Text(fmt.Sprintf("Systems: %d", stats.SystemCount))
	imgui.Text(fmt.Sprintf("Executions: %d", stats.TotalExecutions))

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("SystemsTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("System")
		imgui.TableSetupColumn("Last")
		imgui.TableSetupColumn("Avg")
		imgui.TableSetupColumn("Max")
		imgui.TableHeadersRow()

		for _, sys := range stats.Systems {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(sys.Name)
			imgui.TableNextColumn()
			imgui.Text(micros(sys.LastDuration))
			imgui.TableNextColumn()
			imgui.Text(micros(sys.AvgDuration))
			imgui.TableNextColumn()
			imgui.Text(micros(sys.MaxDuration))
		}

		imgui.EndTable()
	}

	imgui.End()
}

func micros(d time.Duration) string {
	return fmt.Sprintf("%.1f µs", float64(d)/float64(time.Microsecond))
}

func clearName(rows int) string {
	switch rows {
	case 1:
		return "single"
	case 2:
		return "double"
	case 3:
		return "triple"
	default:
		return "tetris"
	}
}
