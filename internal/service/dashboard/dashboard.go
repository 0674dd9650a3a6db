package dashboard

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Aben-G/E-commerce-main/internal/models"
)

const (
	DefaultSalesDays  = 30
	MaxSalesDays      = 366
	DefaultTopLimit   = 5
	salesDayKeyFormat = "2006-01-02"
	salesLabelFormat  = "Jan 2"
)

type Service struct {
	DB *gorm.DB
}

type Stats struct {
	TotalUsers    int64 `json:"totalUsers"`
	TotalProducts int64 `json:"totalProducts"`
}

type SalesSeries struct {
	Labels []string  `json:"labels"`
	Data   []float64 `json:"data"`
}

type TopProduct struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"image_url"`
	Sold     int64   `json:"sold"`
	Revenue  float64 `json:"revenue"`
}

func (s *Service) Stats() (*Stats, error) {
	stats := &Stats{}

	if err := s.DB.Model(&models.User{}).Count(&stats.TotalUsers).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.Product{}).Count(&stats.TotalProducts).Error; err != nil {
		return nil, err
	}

	return stats, nil
}

// Sales sums order totals per calendar day over [today-days, today] in UTC.
// The grouped query only returns days with activity, so the sparse result is
// joined against the full range and gaps filled with 0.
func (s *Service) Sales(days int) (*SalesSeries, error) {
	if days < 1 {
		days = DefaultSalesDays
	}
	if days > MaxSalesDays {
		days = MaxSalesDays
	}

	end := time.Now().UTC().Truncate(24 * time.Hour)
	start := end.AddDate(0, 0, -days)

	var rows []struct {
		Day   string
		Total float64
	}
	err := s.DB.Model(&models.Order{}).
		Select("CAST(DATE(created_at) AS TEXT) AS day, COALESCE(SUM(total_amount), 0) AS total").
		Where("created_at >= ? AND created_at < ?", start, end.AddDate(0, 0, 1)).
		Group("DATE(created_at)").
		Order("day ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	totals := make(map[string]float64, len(rows))
	for _, row := range rows {
		totals[row.Day] = row.Total
	}

	series := &SalesSeries{
		Labels: make([]string, 0, days+1),
		Data:   make([]float64, 0, days+1),
	}
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		series.Labels = append(series.Labels, d.Format(salesLabelFormat))
		series.Data = append(series.Data, totals[d.Format(salesDayKeyFormat)])
	}

	return series, nil
}

// TopProducts ranks by units sold, then revenue. Products without any sale
// still show up with 0/0 because of the left join.
func (s *Service) TopProducts(limit int) ([]TopProduct, error) {
	if limit < 1 {
		limit = DefaultTopLimit
	}

	var rows []TopProduct
	err := s.DB.Model(&models.Product{}).
		Select("products.id, products.name, products.price, products.image_url, COUNT(order_items.id) AS sold, COALESCE(SUM(order_items.quantity * order_items.price), 0) AS revenue").
		Joins("LEFT JOIN order_items ON order_items.product_id = products.id").
		Group("products.id, products.name, products.price, products.image_url").
		Order("sold DESC, revenue DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return rows, nil
}

func (s *Service) RecentProduct() (*models.Product, error) {
	var product models.Product
	if err := s.DB.Order("id DESC").First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}
