package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/danmuck/chemctl/internal/absorb"
	"github.com/danmuck/chemctl/internal/distill"
	"github.com/danmuck/chemctl/internal/observability"
	"github.com/danmuck/chemctl/internal/vle"
)

type distillationRequest struct {
	TemperatureK float64        `json:"temperature_k"`
	Xb           float64        `json:"xb"`
	Xf           float64        `json:"xf"`
	Xd           float64        `json:"xd"`
	Q            float64        `json:"q"`
	Antoine      [2]vle.Antoine `json:"antoine"`
	RefluxFactor float64        `json:"reflux_factor"`
}

type absorptionRequest struct {
	TemperatureK   float64 `json:"temperature_k"`
	PressureBar    float64 `json:"pressure_bar"`
	HenryStandard  float64 `json:"henry_standard"`
	HenryTempCoeff float64 `json:"henry_temperature_dependence"`
	GasInletPPM    float64 `json:"gas_inlet_ppm"`
	GasOutletPPM   float64 `json:"gas_outlet_ppm"`
	LiquidInletPPM float64 `json:"liquid_inlet_ppm"`
	GasMolarWeight float64 `json:"gas_molar_weight"`
	GasInflowM3H   float64 `json:"gas_inflow_m3h"`
}

func (s *Server) registerRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"uptime":    time.Since(s.started).String(),
			"component": "chemctl-api",
			"version":   "0.1.0",
		})
	})

	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	s.router.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"ready":     true,
			"uptime":    time.Since(s.started).String(),
			"component": "chemctl-api",
			"version":   "0.1.0",
		})
	})

	s.router.POST("/design/distillation", func(c *gin.Context) {
		var req distillationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		result, err := distill.Design(distill.Input{
			Temperature:  req.TemperatureK,
			Xb:           req.Xb,
			Xf:           req.Xf,
			Xd:           req.Xd,
			Q:            req.Q,
			Antoine:      req.Antoine,
			RefluxFactor: req.RefluxFactor,
		})
		if err != nil {
			observability.RecordDesignRun(s.Name, "distillation", "error")
			c.JSON(designErrorStatus(err), gin.H{"error": err.Error()})
			return
		}

		observability.RecordDesignRun(s.Name, "distillation", "ok")
		observability.RecordDesignStages(s.Name, result.Stages)
		log.Info().
			Float64("reflux_ratio", result.RefluxRatio).
			Int("stages", result.Stages).
			Int("feed_stage", result.FeedStage).
			Msg("distillation design complete")
		c.JSON(http.StatusOK, result)
	})

	s.router.POST("/design/absorption", func(c *gin.Context) {
		var req absorptionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		result, err := absorb.Size(absorb.Input{
			Temperature:    req.TemperatureK,
			Pressure:       req.PressureBar,
			HenryStandard:  req.HenryStandard,
			HenryTempCoeff: req.HenryTempCoeff,
			GasInlet:       req.GasInletPPM,
			GasOutlet:      req.GasOutletPPM,
			LiquidInlet:    req.LiquidInletPPM,
			GasMolarWeight: req.GasMolarWeight,
			GasInflow:      req.GasInflowM3H,
		})
		if err != nil {
			observability.RecordDesignRun(s.Name, "absorption", "error")
			c.JSON(designErrorStatus(err), gin.H{"error": err.Error()})
			return
		}

		observability.RecordDesignRun(s.Name, "absorption", "ok")
		log.Info().
			Float64("minimum_solvent_flow", result.MinSolventFlow).
			Msg("absorption sizing complete")
		c.JSON(http.StatusOK, result)
	})
}

// designErrorStatus maps calculator error kinds onto HTTP statuses:
// malformed parameters are the client's fault, infeasible or
// non-converging designs are unprocessable, anything else is internal.
func designErrorStatus(err error) int {
	switch {
	case errors.Is(err, distill.ErrInvalidInput), errors.Is(err, absorb.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, distill.ErrInfeasibleDesign), errors.Is(err, distill.ErrNoConvergence):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
