package memstore

import (
	"time"

	"github.com/frontline-homeworks/backend/internal/domain/entity"
	"github.com/frontline-homeworks/backend/pkg/helpers"
)

// SeedUsers creates the built-in admin account. The password is hashed
// here so the plain value never lives in the store.
func SeedUsers(users *UserStore, adminEmail, adminPassword string) error {
	hash, err := helpers.HashPassword(adminPassword)
	if err != nil {
		return err
	}
	return users.Create(&entity.User{
		Name:      "Admin User",
		Email:     adminEmail,
		Password:  hash,
		Role:      helpers.RoleAdmin,
		CreatedAt: time.Now(),
	})
}

// SeedProducts loads the starter catalog.
func SeedProducts(products *ProductStore) error {
	seed := []*entity.Product{
		{Name: "DEWALT Power Tools", Category: "power-tools", Price: 129.99, Description: "Professional grade power tools", Image: "dewalt.jfif"},
		{Name: "INGCO Tools", Category: "hand-tools", Price: 49.99, Description: "Quality tools for every project", Image: "INGCO.jfif"},
		{Name: "BOSCH Routers", Category: "power-tools", Price: 199.99, Description: "Precision cutting and routing", Image: "ROUTER.jfif"},
		{Name: "Cabinet Hardware", Category: "hardware", Price: 29.99, Description: "Premium handles and fittings", Image: "Cabinet Hardware - Handle Shop Couture.jfif"},
	}
	for _, p := range seed {
		if err := products.Create(p); err != nil {
			return err
		}
	}
	return nil
}
