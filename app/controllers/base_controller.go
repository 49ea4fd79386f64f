package controllers

import (
	"fmt"
	"html/template"
	"log"
	"math"
	"net/http"
	"os"
	"strings"

	"github.com/gandarasa/goantar/app/models"
	"github.com/gandarasa/goantar/database/seeders"
	"github.com/gorilla/mux"
	"github.com/gorilla/sessions"
	"github.com/unrolled/render"
	"github.com/urfave/cli"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Server struct {
	DB        *gorm.DB
	Router    *mux.Router
	AppConfig *AppConfig
}

type AppConfig struct {
	AppName string
	AppEnv  string
	AppPort string
	AppURL  string

	// CashLimit: ambang sisa setoran tunai per driver (rupiah);
	// di atas ini barisnya di-highlight merah di halaman keuangan
	CashLimit int64
}

type DBConfig struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	DBDriver   string
}

type Result struct {
	Code    int         `json:"code"`
	Data    interface{} `json:"data"`
	Message string      `json:"message"`
}

var store *sessions.CookieStore

var sessionCart = "cart-session"
var sessionFlash = "flash-session"
var sessionUser = "user-session"

func initSessionStore() {
	key := os.Getenv("SESSION_KEY")
	if key == "" {
		// fallback dev; untuk production WAJIB isi SESSION_KEY di .env
		key = "dev-secret-change-me"
	}
	store = sessions.NewCookieStore([]byte(key))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 hari
		HttpOnly: true,
	}
}

func (server *Server) Initialize(appConfig AppConfig, dbConfig DBConfig) {
	fmt.Println("Welcome to " + appConfig.AppName)

	server.initializeDB(dbConfig)
	server.initializeAppConfig(appConfig)
	initSessionStore()
	server.initializeRoutes()
}

func (server *Server) Run(addr string) {
	fmt.Printf("Listening to port %s", addr)
	log.Fatal(http.ListenAndServe(addr, server.Router))
}

func (server *Server) initializeDB(dbConfig DBConfig) {
	var err error
	if dbConfig.DBDriver == "mysql" {
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local", dbConfig.DBUser, dbConfig.DBPassword, dbConfig.DBHost, dbConfig.DBPort, dbConfig.DBName)
		server.DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
	} else {
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=Asia/Jakarta", dbConfig.DBHost, dbConfig.DBUser, dbConfig.DBPassword, dbConfig.DBName, dbConfig.DBPort)
		server.DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	if err != nil {
		panic("Failed on connecting to the database server")
	}
}

func (server *Server) initializeAppConfig(appConfig AppConfig) {
	server.AppConfig = &appConfig
}

func (server *Server) dbMigrate() {
	for _, model := range models.RegisterModels() {
		err := server.DB.Debug().AutoMigrate(model.Model)

		if err != nil {
			log.Fatal(err)
		}
	}

	fmt.Println("Database migrated successfully.")
}

func (server *Server) InitCommands(config AppConfig, dbConfig DBConfig) {
	server.initializeDB(dbConfig)
	initSessionStore()

	cmdApp := cli.NewApp()
	cmdApp.Commands = []cli.Command{
		{
			Name: "db:migrate",
			Action: func(c *cli.Context) error {
				server.dbMigrate()
				return nil
			},
		},
		{
			Name: "db:seed",
			Action: func(c *cli.Context) error {
				err := seeders.DBSeed(server.DB)
				if err != nil {
					log.Fatal(err)
				}

				return nil
			},
		},
	}

	err := cmdApp.Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}

func SetFlash(w http.ResponseWriter, r *http.Request, name string, value string) {
	session, err := store.Get(r, sessionFlash)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	session.AddFlash(value, name)
	session.Save(r, w)
}

func GetFlash(w http.ResponseWriter, r *http.Request, name string) []string {
	session, err := store.Get(r, sessionFlash)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return nil
	}

	fm := session.Flashes(name)
	if len(fm) == 0 {
		return nil
	}

	session.Save(r, w)
	var flashes []string
	for _, fl := range fm {
		flashes = append(flashes, fl.(string))
	}

	return flashes
}

func IsLoggedIn(r *http.Request) bool {
	if store == nil { // guard
		return false
	}
	session, _ := store.Get(r, sessionUser)
	return session.Values["id"] != nil
}

func ComparePassword(password string, hashedPassword string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}

func MakePassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	return string(hashedPassword), err
}

func (server *Server) CurrentUser(w http.ResponseWriter, r *http.Request) *models.User {
	if !IsLoggedIn(r) {
		return nil
	}

	session, _ := store.Get(r, sessionUser)

	userModel := models.User{}
	user, err := userModel.FindByID(server.DB, session.Values["id"].(string))
	if err != nil {
		session.Values["id"] = nil
		session.Save(r, w)
		return nil
	}

	return user
}

func (server *Server) GetCartCount(w http.ResponseWriter, r *http.Request) int {
	cartID := GetCartSessionID(w, r)

	cartModel := models.Cart{}
	items, err := cartModel.GetItems(server.DB, cartID)
	if err != nil {
		return 0
	}

	return len(items)
}

// ===== Admin helper =====
func IsAdminUser(u *models.User) bool {
	if u == nil {
		return false
	}
	adminEmail := os.Getenv("ADMIN_EMAIL") // contoh: admin@goantar.id
	return strings.EqualFold(strings.TrimSpace(u.Email), strings.TrimSpace(adminEmail))
}

// requireAdmin: guard bersama utk semua halaman admin; nil kalau bukan admin
// (handler tinggal return)
func (server *Server) requireAdmin(w http.ResponseWriter, r *http.Request) *models.User {
	if !IsLoggedIn(r) {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return nil
	}

	admin := server.CurrentUser(w, r)
	if !IsAdminUser(admin) {
		SetFlash(w, r, "error", "Unauthorized")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return nil
	}

	return admin
}

// formatRupiah: helper untuk format nominal jadi Rp xxx
func formatRupiah(price interface{}) string {
	switch v := price.(type) {
	case int:
		return fmt.Sprintf("Rp %d", v)
	case int64:
		return fmt.Sprintf("Rp %d", v)
	case float64:
		return fmt.Sprintf("Rp %d", int64(v))
	default:
		return fmt.Sprintf("Rp %v", v)
	}
}

func templateFuncMap() template.FuncMap {
	return template.FuncMap{
		"formatRupiah": formatRupiah,
		"lower":        strings.ToLower,
		"add": func(a, b int) int {
			return a + b
		},
		"sub": func(a, b int) int {
			return a - b
		},
		"seq": func(from, to int) []int {
			if to < from {
				return []int{}
			}
			s := make([]int, 0, to-from+1)
			for i := from; i <= to; i++ {
				s = append(s, i)
			}
			return s
		},
	}
}

func userRender() *render.Render {
	return render.New(render.Options{
		Directory:  "templates",
		Layout:     "layout",
		Extensions: []string{".html", ".tmpl"},
		Funcs:      []template.FuncMap{templateFuncMap()},
	})
}

func adminRender() *render.Render {
	return render.New(render.Options{
		Directory:  "templates",
		Layout:     "admin_layout",
		Extensions: []string{".html", ".tmpl"},
		Funcs:      []template.FuncMap{templateFuncMap()},
	})
}

func (server *Server) RequireLogin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !IsLoggedIn(r) {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next(w, r)
	}
}

func totalPagesFor(total int64, perPage int) int {
	pages := int(math.Ceil(float64(total) / float64(perPage)))
	if pages == 0 {
		pages = 1
	}
	return pages
}
