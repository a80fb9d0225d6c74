package api

import (
	"net/http"
	"strconv"

	"github.com/MasonSBrown/NeXtSRGAN/internal/schedule"
)

// GetSchedule returns the learning rate schedule. With a "step" query
// parameter it returns the learning rate at that step instead.
// GET /api/v1/schedule
// GET /api/v1/schedule?step=40000
func (h *Handler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.loadConfig()
	if err != nil {
		writeLoadError(w, err)
		return
	}

	sched := schedule.FromConfig(cfg.Training.LearningRate)

	if raw := r.URL.Query().Get("step"); raw != "" {
		step, err := strconv.Atoi(raw)
		if err != nil || step < 0 {
			WriteInvalidRequest(w, "step must be a non-negative integer")
			return
		}

		writeJSONData(w, ScheduleStepResponse{Step: step, LR: sched.LRAt(step)})
		return
	}

	writeJSONData(w, ScheduleResponse{Segments: sched.Segments(cfg.Training.NIter)})
}
