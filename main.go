package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	auth "Brakelab/internal/auth"
	braking "Brakelab/internal/calc/braking"
	batch "Brakelab/internal/calc/premium/batch"
	importer "Brakelab/internal/calc/premium/importer"
	recommend "Brakelab/internal/calc/premium/recommend"
	setup "Brakelab/internal/calc/premium/setup"
	reference "Brakelab/internal/calc/reference"
	report "Brakelab/internal/calc/report"
	garage "Brakelab/internal/garage"
	repo "Brakelab/internal/repo"
)

var wg sync.WaitGroup

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

func HandleList(mux *mux.Router, db *sql.DB) {
	userRepo := repo.NewPostgresDB(db)
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}
	tokenKey := os.Getenv("TOKEN_KEY")
	if tokenKey == "" {
		log.Fatal("TOKEN_KEY environment variable is not set")
	}

	authEnv := &auth.Authenv{JWTkey: []byte(tokenKey), Repo: userRepo}

	limiter := auth.NewIPRateLimiter(1, 3)

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/login", authEnv.AuthHandler).Methods("POST")
	api.HandleFunc("/register", authEnv.RegisterHandler).Methods("POST")

	secureApi := api.PathPrefix("/user").Subrouter()
	secureApi.Use(authEnv.AuthMiddleware)

	brakingH := &braking.Handler{}
	referenceH := &reference.Handler{}
	reportH := &report.Handler{}
	batchH := &batch.Handler{}
	importerH := &importer.Handler{}
	recommendH := &recommend.Handler{}
	setupH := &setup.Handler{}
	garageH := &garage.Handler{Repo: userRepo}

	secureApi.HandleFunc("/tools/braking/calc", brakingH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/braking/surfaces", referenceH.Surfaces).Methods("GET")
	secureApi.HandleFunc("/tools/braking/weather", referenceH.Weather).Methods("GET")
	secureApi.HandleFunc("/tools/braking/grades", referenceH.Grades).Methods("GET")
	secureApi.HandleFunc("/tools/report/pdf", reportH.Generate).Methods("POST")

	secureApi.HandleFunc("/premium/batch/braking", batchH.Braking).Methods("POST")
	secureApi.HandleFunc("/premium/import/braking", importerH.Braking).Methods("POST")
	secureApi.HandleFunc("/premium/recommend/safe-speed", recommendH.SafeSpeed).Methods("POST")
	secureApi.HandleFunc("/premium/setup/tyres", setupH.Tyres).Methods("POST")

	secureApi.HandleFunc("/garage/presets", garageH.Create).Methods("POST")
	secureApi.HandleFunc("/garage/presets", garageH.List).Methods("GET")
	secureApi.HandleFunc("/garage/presets/{id:[0-9]+}", garageH.Delete).Methods("DELETE")

	mainFileServer := http.FileServer(http.Dir("./static/main"))
	mux.PathPrefix("/").
		Handler(mainFileServer)
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	db := auth.InitDB()
	defer db.Close()
	mux := mux.NewRouter()
	log.Println("Starting server on :443")
	HandleList(mux, db)
	handler := CORS(mux)

	server := &http.Server{
		Addr:    ":443",
		Handler: handler,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := server.ListenAndServeTLS("server.crt", "server.key"); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	fmt.Println("Shutdown signal received!")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")

	wg.Wait()
}
