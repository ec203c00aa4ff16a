package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/tomandjerry17/cafeteria-backend/pkg/resp"
	"github.com/tomandjerry17/cafeteria-backend/services"
)

type StatsController struct {
	Stats *services.StatsService
}

func NewStatsController(stats *services.StatsService) *StatsController {
	return &StatsController{Stats: stats}
}

// GET /stats/overview
func (s *StatsController) Overview(c *gin.Context) {
	overview, err := s.Stats.Overview()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, overview)
}
