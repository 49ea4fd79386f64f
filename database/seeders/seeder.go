package seeders

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/bxcodec/faker/v3"
	"github.com/gandarasa/goantar/app/consts"
	"github.com/gandarasa/goantar/app/models"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DBSeed: isi data development — user, merchant, driver, menu,
// plus order COD hari ini supaya halaman setoran langsung ada isinya
func DBSeed(db *gorm.DB) error {
	users, err := seedUsers(db)
	if err != nil {
		return err
	}

	merchants, err := seedMerchants(db)
	if err != nil {
		return err
	}

	drivers, err := seedDrivers(db)
	if err != nil {
		return err
	}

	menuByMerchant, err := seedMenuItems(db, merchants)
	if err != nil {
		return err
	}

	if err := seedTodayOrders(db, users, merchants, drivers, menuByMerchant); err != nil {
		return err
	}

	fmt.Println("Database seeded successfully.")

	return nil
}

func seedUsers(db *gorm.DB) ([]models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	users := []models.User{
		{
			ID:        uuid.New().String(),
			FirstName: "Admin",
			LastName:  "GoAntar",
			Email:     "admin@goantar.id",
			Password:  string(hashed),
			Phone:     faker.Phonenumber(),
		},
	}

	for i := 0; i < 10; i++ {
		users = append(users, models.User{
			ID:        uuid.New().String(),
			FirstName: faker.FirstName(),
			LastName:  faker.LastName(),
			Email:     faker.Email(),
			Password:  string(hashed),
			Phone:     faker.Phonenumber(),
		})
	}

	for i := range users {
		if err := db.Create(&users[i]).Error; err != nil {
			return nil, err
		}
	}

	return users, nil
}

func seedMerchants(db *gorm.DB) ([]models.Merchant, error) {
	names := []string{
		"Warung Sejahtera",
		"Dapur Bu Rina",
		"Bakso Pak Kumis",
		"Nasi Goreng Berkah",
		"Ayam Geprek Juara",
	}

	var merchants []models.Merchant
	for i, name := range names {
		status := models.PartnerStatusApproved
		isOpen := true
		if i == len(names)-1 {
			// satu merchant dibiarkan pending supaya alur verifikasi bisa dicoba
			status = models.PartnerStatusPending
			isOpen = false
		}

		merchant := models.Merchant{
			ID:      uuid.New().String(),
			Name:    name,
			Slug:    slug.Make(name),
			Address: faker.Sentence(),
			Phone:   faker.Phonenumber(),
			Status:  status,
			IsOpen:  isOpen,
		}

		if err := db.Create(&merchant).Error; err != nil {
			return nil, err
		}

		merchants = append(merchants, merchant)
	}

	return merchants, nil
}

func seedDrivers(db *gorm.DB) ([]models.Driver, error) {
	var drivers []models.Driver
	for i := 0; i < 6; i++ {
		status := models.PartnerStatusApproved
		isActive := true
		if i == 5 {
			status = models.PartnerStatusPending
			isActive = false
		}

		driver := models.Driver{
			ID:           uuid.New().String(),
			Name:         faker.FirstName() + " " + faker.LastName(),
			Phone:        faker.Phonenumber(),
			VehiclePlate: fmt.Sprintf("B %d %c%c", 1000+rand.Intn(9000), 'A'+rune(rand.Intn(26)), 'A'+rune(rand.Intn(26))),
			Status:       status,
			IsActive:     isActive,
		}

		if err := db.Create(&driver).Error; err != nil {
			return nil, err
		}

		drivers = append(drivers, driver)
	}

	return drivers, nil
}

func seedMenuItems(db *gorm.DB, merchants []models.Merchant) (map[string][]models.MenuItem, error) {
	byMerchant := make(map[string][]models.MenuItem)

	for _, merchant := range merchants {
		for i := 0; i < 4; i++ {
			name := strings.Title(faker.Word()) + " " + strings.Title(faker.Word())
			price := decimal.NewFromInt(int64(10000 + rand.Intn(8)*5000))

			item := models.MenuItem{
				ID:          uuid.New().String(),
				MerchantID:  merchant.ID,
				Name:        name,
				Slug:        slug.Make(merchant.Name + " " + name),
				Price:       price,
				Description: faker.Sentence(),
				IsAvailable: true,
			}

			if err := db.Create(&item).Error; err != nil {
				return nil, err
			}

			byMerchant[merchant.ID] = append(byMerchant[merchant.ID], item)
		}
	}

	return byMerchant, nil
}

func seedTodayOrders(db *gorm.DB, users []models.User, merchants []models.Merchant, drivers []models.Driver, menuByMerchant map[string][]models.MenuItem) error {
	methods := []string{consts.PaymentMethodCOD, consts.PaymentMethodCOD, consts.PaymentMethodTransfer, consts.PaymentMethodWallet}

	for i := 0; i < 20; i++ {
		user := users[1+rand.Intn(len(users)-1)]
		merchant := merchants[rand.Intn(len(merchants)-1)] // skip yang pending
		items := menuByMerchant[merchant.ID]
		item := items[rand.Intn(len(items))]

		qty := 1 + rand.Intn(3)
		subtotal := item.Price.Mul(decimal.NewFromInt(int64(qty)))
		deliveryFee := decimal.NewFromInt(8000)

		method := methods[rand.Intn(len(methods))]

		// sebagian order sudah selesai & fee-nya tersetor, sebagian masih jalan
		deliveryStatus := consts.DeliveryStatusDelivering
		paymentStatus := consts.OrderPaymentStatusUnpaid
		if rand.Intn(2) == 0 {
			deliveryStatus = consts.DeliveryStatusDelivered
			paymentStatus = consts.OrderPaymentStatusPaid
		}

		driverID := ""
		if len(drivers) > 0 {
			driverID = drivers[rand.Intn(len(drivers)-1)].ID // skip yang pending
		}

		orderID := uuid.New().String()
		order := models.Order{
			ID:              orderID,
			UserID:          user.ID,
			MerchantID:      merchant.ID,
			DriverID:        driverID,
			ItemsSubtotal:   subtotal,
			DeliveryFee:     deliveryFee,
			AmountTotal:     subtotal.Add(deliveryFee),
			ServiceFee:      models.ServiceFeeFor(subtotal),
			PaymentMethod:   method,
			PaymentStatus:   paymentStatus,
			DeliveryStatus:  deliveryStatus,
			RecipientName:   user.FullName(),
			RecipientPhone:  user.Phone,
			DeliveryAddress: faker.Sentence(),
			CreatedAt:       time.Now().Add(-time.Duration(rand.Intn(8)) * time.Hour),
			OrderItems: []models.OrderItem{
				{
					OrderID:    orderID,
					MenuItemID: item.ID,
					Name:       item.Name,
					BasePrice:  item.Price,
					Qty:        qty,
					SubTotal:   subtotal,
				},
			},
		}

		if err := db.Create(&order).Error; err != nil {
			return err
		}
	}

	return nil
}
