package application

import (
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/frontline-homeworks/backend/internal/domain/entity"
	repo "github.com/frontline-homeworks/backend/internal/domain/repository"
)

// AdminService computes dashboard figures from the live stores and applies
// the admin-only mutations.
type AdminService struct {
	Users    repo.UserRepository
	Orders   repo.OrderRepository
	Contacts repo.ContactRepository
	Logger   *logrus.Logger
}

func NewAdminService(users repo.UserRepository, orders repo.OrderRepository, contacts repo.ContactRepository, logger *logrus.Logger) *AdminService {
	return &AdminService{Users: users, Orders: orders, Contacts: contacts, Logger: logger}
}

type MonthlyStat struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
	Orders  int     `json:"orders"`
}

type ProductStat struct {
	Name    string  `json:"name"`
	Sales   int     `json:"sales"`
	Revenue float64 `json:"revenue"`
}

type Dashboard struct {
	TotalRevenue   float64           `json:"totalRevenue"`
	TotalOrders    int               `json:"totalOrders"`
	TotalCustomers int               `json:"totalCustomers"`
	RecentOrders   []*entity.Order   `json:"recentOrders"`
	RecentContacts []*entity.Contact `json:"recentContacts"`
	Monthly        []MonthlyStat     `json:"monthlyStats"`
}

type Analytics struct {
	TotalRevenue   float64       `json:"totalRevenue"`
	TotalOrders    int           `json:"totalOrders"`
	TotalCustomers int           `json:"totalCustomers"`
	Monthly        []MonthlyStat `json:"monthlyStats"`
	TopProducts    []ProductStat `json:"topProducts"`
}

func lastN[T any](items []T, n int) []T {
	if len(items) <= n {
		return items
	}
	return items[len(items)-n:]
}

// monthlyRollup buckets cancelled-excluded orders into the last six
// calendar months.
func (s *AdminService) monthlyRollup(orders []*entity.Order) []MonthlyStat {
	now := time.Now()
	stats := make([]MonthlyStat, 0, 6)
	byMonth := map[string]*MonthlyStat{}
	for i := 5; i >= 0; i-- {
		m := now.AddDate(0, -i, 0)
		key := m.Format("2006-01")
		stats = append(stats, MonthlyStat{Month: m.Format("January")})
		byMonth[key] = &stats[len(stats)-1]
	}
	for _, o := range orders {
		if o.Status == entity.OrderStatusCancelled {
			continue
		}
		if st, ok := byMonth[o.CreatedAt.Format("2006-01")]; ok {
			st.Revenue += o.Amount
			st.Orders++
		}
	}
	return stats
}

func (s *AdminService) Dashboard() *Dashboard {
	orders := s.Orders.All()
	var revenue float64
	for _, o := range orders {
		if o.Status != entity.OrderStatusCancelled {
			revenue += o.Amount
		}
	}
	return &Dashboard{
		TotalRevenue:   revenue,
		TotalOrders:    len(orders),
		TotalCustomers: s.Users.Count(),
		RecentOrders:   lastN(orders, 5),
		RecentContacts: lastN(s.Contacts.All(), 5),
		Monthly:        s.monthlyRollup(orders),
	}
}

func (s *AdminService) Analytics() *Analytics {
	orders := s.Orders.All()
	var revenue float64
	byProduct := map[string]*ProductStat{}
	for _, o := range orders {
		if o.Status == entity.OrderStatusCancelled {
			continue
		}
		revenue += o.Amount
		st, ok := byProduct[o.ProductName]
		if !ok {
			st = &ProductStat{Name: o.ProductName}
			byProduct[o.ProductName] = st
		}
		st.Sales++
		st.Revenue += o.Amount
	}
	top := make([]ProductStat, 0, len(byProduct))
	for _, st := range byProduct {
		top = append(top, *st)
	}
	sort.Slice(top, func(i, j int) bool { return top[i].Revenue > top[j].Revenue })
	if len(top) > 5 {
		top = top[:5]
	}
	return &Analytics{
		TotalRevenue:   revenue,
		TotalOrders:    len(orders),
		TotalCustomers: s.Users.Count(),
		Monthly:        s.monthlyRollup(orders),
		TopProducts:    top,
	}
}

func validStatus(status string, allowed []string) bool {
	for _, s := range allowed {
		if s == status {
			return true
		}
	}
	return false
}

// UpdateOrderStatus moves an order through fulfilment. Unknown ids are a
// not-found, not a silent no-op.
func (s *AdminService) UpdateOrderStatus(orderID, status string) (*entity.Order, error) {
	if !validStatus(status, entity.OrderUpdateStatuses) {
		return nil, ErrInvalidStatus
	}
	o, err := s.Orders.UpdateStatus(orderID, status)
	if err != nil {
		return nil, err
	}
	s.Logger.WithFields(logrus.Fields{"order_id": orderID, "status": status}).Info("order status updated")
	return o, nil
}

func (s *AdminService) UpdateContactStatus(id int64, status string) (*entity.Contact, error) {
	if !validStatus(status, entity.ContactUpdateStatuses) {
		return nil, ErrInvalidStatus
	}
	c, err := s.Contacts.UpdateStatus(id, status)
	if err != nil {
		return nil, err
	}
	s.Logger.WithFields(logrus.Fields{"contact_id": id, "status": status}).Info("contact status updated")
	return c, nil
}

// DeleteUser removes the record. Tokens already issued to the user stay
// valid until expiry; orders are untouched.
func (s *AdminService) DeleteUser(id int64) (*entity.User, error) {
	u, err := s.Users.Delete(id)
	if err != nil {
		return nil, err
	}
	s.Logger.WithFields(logrus.Fields{"user_id": id}).Info("user deleted")
	return u, nil
}
