package services

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/tomandjerry17/cafeteria-backend/entity"
)

type StatsService struct {
	DB *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{DB: db}
}

type StatsOverview struct {
	Students            int64            `json:"students"`
	Staff               int64            `json:"staff"`
	MenuItems           int64            `json:"menuItems"`
	Payments            int64            `json:"payments"`
	OrdersByStatus      map[string]int64 `json:"ordersByStatus"`
	Revenue             decimal.Decimal  `json:"revenue"`
	UnreadNotifications int64            `json:"unreadNotifications"`
}

// Overview aggregates the dashboard counts in one pass per table.
func (s *StatsService) Overview() (*StatsOverview, error) {
	out := &StatsOverview{OrdersByStatus: map[string]int64{}}

	if err := s.DB.Model(&entity.User{}).Where("role = ?", entity.RoleStudent).Count(&out.Students).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&entity.User{}).Where("role = ?", entity.RoleStaff).Count(&out.Staff).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&entity.MenuItem{}).Count(&out.MenuItems).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&entity.Payment{}).Count(&out.Payments).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&entity.Notification{}).
		Where("status = ?", entity.NotificationUnread).
		Count(&out.UnreadNotifications).Error; err != nil {
		return nil, err
	}

	var rows []struct {
		Status string
		Count  int64
	}
	if err := s.DB.Model(&entity.Order{}).
		Select("status, COUNT(*) AS count").Group("status").Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, r := range rows {
		out.OrdersByStatus[r.Status] = r.Count
	}

	if err := s.DB.Model(&entity.Payment{}).
		Select("COALESCE(SUM(amount_due), 0)").Scan(&out.Revenue).Error; err != nil {
		return nil, err
	}
	return out, nil
}
