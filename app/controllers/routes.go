package controllers

import (
	"net/http"

	"github.com/gorilla/mux"
)

func (server *Server) initializeRoutes() {
	server.Router = mux.NewRouter()
	server.Router.HandleFunc("/", server.Home).Methods("GET")

	server.Router.HandleFunc("/login", server.Login).Methods("GET")
	server.Router.HandleFunc("/login", server.DoLogin).Methods("POST")
	server.Router.HandleFunc("/register", server.Register).Methods("GET")
	server.Router.HandleFunc("/register", server.DoRegister).Methods("POST")
	server.Router.HandleFunc("/logout", server.Logout).Methods("GET")

	// WARUNG & MENU
	server.Router.HandleFunc("/warung/{slug}", server.MerchantShow).Methods("GET")

	// CART
	server.Router.HandleFunc("/carts", server.GetCart).Methods("GET")
	server.Router.HandleFunc("/carts", server.AddItemToCart).Methods("POST")
	server.Router.HandleFunc("/carts/update", server.UpdateCartItemQty).Methods("POST")
	server.Router.HandleFunc("/carts/remove", server.RemoveCartItem).Methods("POST")

	// ORDERS
	server.Router.HandleFunc("/orders", server.OrdersIndex).Methods("GET")
	server.Router.HandleFunc("/orders/checkout", server.Checkout).Methods("POST")
	server.Router.HandleFunc("/orders/{id}", server.ShowOrder).Methods("GET")

	// PROFILE
	server.Router.HandleFunc("/profile", server.RequireLogin(server.ProfileIndex)).Methods("GET")
	server.Router.HandleFunc("/profile", server.RequireLogin(server.ProfileUpdate)).Methods("POST")
	server.Router.HandleFunc("/profile/password", server.RequireLogin(server.ProfilePasswordForm)).Methods("GET")
	server.Router.HandleFunc("/profile/password", server.RequireLogin(server.ProfilePasswordUpdate)).Methods("POST")

	// STATIC FILES (CSS, JS, gambar di /public)
	staticFileDirectory := http.Dir("./public/")
	staticFileHandler := http.StripPrefix("/public/", http.FileServer(staticFileDirectory))
	server.Router.PathPrefix("/public/").Handler(staticFileHandler).Methods("GET")

	// =======================
	//    ADMIN DASHBOARD
	// =======================
	server.Router.HandleFunc("/admin/dashboard", server.AdminDashboard).Methods("GET")

	// =======================
	//      ADMIN ORDERS
	// =======================
	server.Router.HandleFunc("/admin/orders", server.AdminOrdersIndex).Methods("GET")
	server.Router.HandleFunc("/admin/orders/{id}", server.AdminOrdersShow).Methods("GET")
	server.Router.HandleFunc("/admin/orders/{id}/status", server.AdminUpdateDeliveryStatus).Methods("POST")
	server.Router.HandleFunc("/admin/orders/{id}/deposit", server.AdminMarkFeeDeposited).Methods("POST")

	// =======================
	//      ADMIN DRIVERS
	// =======================
	server.Router.HandleFunc("/admin/drivers", server.AdminDriversIndex).Methods("GET")
	server.Router.HandleFunc("/admin/drivers/{id}", server.AdminDriversShow).Methods("GET")
	server.Router.HandleFunc("/admin/drivers/{id}/approve", server.AdminDriverApprove).Methods("POST")
	server.Router.HandleFunc("/admin/drivers/{id}/suspend", server.AdminDriverSuspend).Methods("POST")
	server.Router.HandleFunc("/admin/drivers/{id}/reactivate", server.AdminDriverReactivate).Methods("POST")
	server.Router.HandleFunc("/admin/drivers/{id}/terminate", server.AdminDriverTerminateForm).Methods("GET")
	server.Router.HandleFunc("/admin/drivers/{id}/terminate", server.AdminDriverTerminate).Methods("POST")

	// =======================
	//     ADMIN MERCHANTS
	// =======================
	server.Router.HandleFunc("/admin/merchants", server.AdminMerchantsIndex).Methods("GET")
	server.Router.HandleFunc("/admin/merchants/{id}", server.AdminMerchantsShow).Methods("GET")
	server.Router.HandleFunc("/admin/merchants/{id}/approve", server.AdminMerchantApprove).Methods("POST")
	server.Router.HandleFunc("/admin/merchants/{id}/suspend", server.AdminMerchantSuspend).Methods("POST")
	server.Router.HandleFunc("/admin/merchants/{id}/reactivate", server.AdminMerchantReactivate).Methods("POST")
	server.Router.HandleFunc("/admin/merchants/{id}/terminate", server.AdminMerchantTerminateForm).Methods("GET")
	server.Router.HandleFunc("/admin/merchants/{id}/terminate", server.AdminMerchantTerminate).Methods("POST")

	// =======================
	//   ADMIN KEUANGAN COD
	// =======================
	server.Router.HandleFunc("/admin/finance/cod", server.AdminCodSettlement).Methods("GET")
	server.Router.HandleFunc("/admin/finance/cod/export.csv", server.AdminCodSettlementExportCSV).Methods("GET")
	server.Router.HandleFunc("/admin/finance/cod/export.xlsx", server.AdminCodSettlementExportXLSX).Methods("GET")
}
