package main

import (
	"log"

	"smarttoll/internal/domain"
	"smarttoll/internal/domain/models"
	"smarttoll/internal/services"
	"smarttoll/internal/store"
)

// seed installs the demo dataset the dashboards open with. State is
// process-local; a restart returns to exactly this picture.
func seed(st *store.Store, wallets *services.WalletService, auth *services.AuthService) {
	for _, b := range []models.TollBooth{
		{ID: 1, Name: "Plaza A", Location: "Highway 101 North", Lanes: 4, Operator: "John Smith", Rate: 15.50},
		{ID: 2, Name: "Plaza B", Location: "Highway 101 South", Lanes: 6, Operator: "Jane Doe", Rate: 20.00},
		{ID: 3, Name: "Plaza C", Location: "Interstate 5", Lanes: 5, Operator: "Mike Johnson", Rate: 12.50},
	} {
		st.UpsertBooth(b)
	}

	for _, p := range []models.VehiclePass{
		{ID: 1, VehicleNumber: "ABC-1234", Status: models.PassPaid, Amount: 15.50, Timestamp: "14:35:20", Lane: 3},
		{ID: 2, VehicleNumber: "XYZ-5678", Status: models.PassProcessing, Amount: 15.50, Timestamp: "14:35:15", Lane: 3},
		{ID: 3, VehicleNumber: "DEF-9012", Status: models.PassPaid, Amount: 15.50, Timestamp: "14:34:58", Lane: 3},
		{ID: 4, VehicleNumber: "GHI-3456", Status: models.PassPaid, Amount: 15.50, Timestamp: "14:34:42", Lane: 3},
	} {
		st.UpsertPass(p)
	}

	accounts := []struct {
		name, email, password string
		role                  domain.Role
	}{
		{"Admin", "admin@smarttoll.test", "admin12345", domain.RoleAdmin},
		{"Operator", "operator@smarttoll.test", "operator12345", domain.RoleOperator},
		{"Demo User", "user@smarttoll.test", "user12345", domain.RoleUser},
	}
	var userID domain.ID
	for _, a := range accounts {
		acc, err := auth.SeedAccount(a.name, a.email, a.password, a.role)
		if err != nil {
			log.Fatalf("seed account %s: %v", a.email, err)
		}
		if a.role == domain.RoleUser {
			userID = acc.ID
		}
	}

	wallets.Seed(userID, 250.50, []models.Transaction{
		{ID: 4, Date: "2024-01-15", Time: "14:30", Booth: "Plaza A - Lane 3", Amount: 15.50, Type: models.TxToll},
		{ID: 3, Date: "2024-01-14", Time: "09:15", Booth: "Wallet Recharge", Amount: 100.00, Type: models.TxRecharge},
		{ID: 2, Date: "2024-01-13", Time: "18:45", Booth: "Plaza B - Lane 1", Amount: 20.00, Type: models.TxToll},
		{ID: 1, Date: "2024-01-12", Time: "11:20", Booth: "Plaza C - Lane 2", Amount: 12.50, Type: models.TxToll},
	})
}
