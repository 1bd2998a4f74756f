package transport

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"strconv"

	authapp "github.com/ernitinjai/meenicode-pos/application/auth"
	dashboardapp "github.com/ernitinjai/meenicode-pos/application/dashboard"
	inventoryapp "github.com/ernitinjai/meenicode-pos/application/inventory"
	"github.com/ernitinjai/meenicode-pos/constant"
	"github.com/ernitinjai/meenicode-pos/model"
	utilsContext "github.com/ernitinjai/meenicode-pos/utils/context"
	"github.com/ernitinjai/meenicode-pos/utils/errors"
	"github.com/gorilla/mux"
)

type RestHandler struct {
	AuthApp      authapp.AuthApp
	InventoryApp inventoryapp.InventoryApp
	DashboardApp dashboardapp.DashboardApp
}

func NewTransport(AuthApp authapp.AuthApp, InventoryApp inventoryapp.InventoryApp, DashboardApp dashboardapp.DashboardApp) http.Handler {
	mux := mux.NewRouter()

	rh := &RestHandler{
		AuthApp:      AuthApp,
		InventoryApp: InventoryApp,
		DashboardApp: DashboardApp,
	}

	// Public routes
	mux.HandleFunc("/", rh.Landing).Methods(http.MethodGet)
	mux.HandleFunc("/register", rh.Register).Methods(http.MethodPost)
	mux.HandleFunc("/login", rh.Login).Methods(http.MethodPost)
	mux.HandleFunc("/logout", rh.Logout).Methods(http.MethodPost)

	// Protected screens
	mux.HandleFunc("/dashboard", rh.Dashboard).Methods(http.MethodGet)
	mux.HandleFunc("/inventory", rh.Inventory).Methods(http.MethodGet)
	mux.HandleFunc("/inventory/refresh", rh.RefreshInventory).Methods(http.MethodPost)
	mux.HandleFunc("/inventory/search", rh.SearchInventory).Methods(http.MethodPost)
	mux.HandleFunc("/inventory/sort", rh.SortInventory).Methods(http.MethodPost)
	mux.HandleFunc("/inventory/category", rh.FilterCategory).Methods(http.MethodPost)
	mux.HandleFunc("/inventory/page", rh.TurnPage).Methods(http.MethodPost)
	mux.HandleFunc("/inventory/products", rh.CreateProduct).Methods(http.MethodPost)
	mux.HandleFunc("/inventory/products/{id}", rh.ProductDetail).Methods(http.MethodGet)
	mux.HandleFunc("/inventory/products/{id}", rh.UpdateProduct).Methods(http.MethodPut)
	mux.HandleFunc("/inventory/products/{id}", rh.DeleteProduct).Methods(http.MethodDelete)

	// middleware
	mux.Use(RequestIDMiddleware())
	mux.Use(LoggingMiddleware())
	mux.Use(SessionMiddleware(AuthApp))

	return mux
}

// Landing is the public marketing screen.
func (s *RestHandler) Landing(w http.ResponseWriter, r *http.Request) {
	payload := struct {
		Name     string   `json:"name"`
		Tagline  string   `json:"tagline"`
		Features []string `json:"features"`
	}{
		Name:    "meenicode POS",
		Tagline: "Run your shop's sales and inventory from one place",
		Features: []string{
			"Sales dashboard with daily and weekly figures",
			"Product inventory with search, sort and pagination",
			"Shop registration and sign-in",
		},
	}
	writeSuccess(w, payload)
}

func (s *RestHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrValidation))
		return
	}

	session, err := s.AuthApp.Register(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, session)
}

func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrValidation))
		return
	}

	session, err := s.AuthApp.Login(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, session)
}

func (s *RestHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := s.AuthApp.SignOut(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}

func (s *RestHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	summary := s.DashboardApp.Summary(ctx)

	payload := struct {
		Shop    *model.Shop             `json:"shop,omitempty"`
		Summary *model.DashboardSummary `json:"summary"`
	}{
		Summary: summary,
	}
	if session, ok := utilsContext.GetSession(ctx); ok {
		payload.Shop = &session.Shop
	}

	writeSuccess(w, payload)
}

// Inventory renders the current derived page, fetching the collection on
// first access.
func (s *RestHandler) Inventory(w http.ResponseWriter, r *http.Request) {
	if s.InventoryApp.Status() == constant.InventoryLoading {
		if err := s.InventoryApp.Load(r.Context()); err != nil {
			writeError(w, err)
			return
		}
	}
	s.writeInventoryView(w)
}

func (s *RestHandler) RefreshInventory(w http.ResponseWriter, r *http.Request) {
	if err := s.InventoryApp.Load(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	s.writeInventoryView(w)
}

func (s *RestHandler) SearchInventory(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Term string `json:"term"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrValidation))
		return
	}

	s.InventoryApp.SetSearchTerm(req.Term)
	s.writeInventoryView(w)
}

func (s *RestHandler) SortInventory(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Key model.SortKey `json:"key"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrValidation))
		return
	}

	if err := s.InventoryApp.SortBy(req.Key); err != nil {
		writeError(w, err)
		return
	}
	s.writeInventoryView(w)
}

func (s *RestHandler) FilterCategory(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Category string `json:"category"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrValidation))
		return
	}

	s.InventoryApp.SetCategory(req.Category)
	s.writeInventoryView(w)
}

func (s *RestHandler) TurnPage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Page int `json:"page"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrValidation))
		return
	}

	s.InventoryApp.SetPage(req.Page)
	s.writeInventoryView(w)
}

func (s *RestHandler) ProductDetail(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	product, err := s.InventoryApp.Select(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, product)
}

func (s *RestHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var draft model.ProductDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrValidation))
		return
	}

	created, err := s.InventoryApp.Create(ctx, &draft)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, created)
}

func (s *RestHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := productID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var draft model.ProductDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrValidation))
		return
	}

	if _, err := s.InventoryApp.Select(id); err != nil {
		writeError(w, err)
		return
	}

	updated, err := s.InventoryApp.UpdateSelected(ctx, &draft)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, updated)
}

func (s *RestHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := productID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if _, err := s.InventoryApp.Select(id); err != nil {
		writeError(w, err)
		return
	}

	if err := s.InventoryApp.DeleteSelected(ctx); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}

func (s *RestHandler) writeInventoryView(w http.ResponseWriter) {
	view, err := s.InventoryApp.View()
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, view)
}

func productID(r *http.Request) (uint64, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, errors.SetCustomErrorWithDetail(constant.ErrValidation, "invalid product id")
	}
	return id, nil
}

type responseEnvelope struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func writeSuccess(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(responseEnvelope{
		Code:    constant.ErrorTypeCode[constant.Successful],
		Message: constant.ErrorTypeMessage[constant.Successful],
		Data:    payload,
	})
}

func writeError(w http.ResponseWriter, err error) {
	var cerr errors.CustomError
	if !stderrors.As(err, &cerr) {
		cerr = errors.SetCustomError(constant.ErrInternal)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(cerr.ErrorHTTPCode())
	_ = json.NewEncoder(w).Encode(responseEnvelope{
		Code:    cerr.ErrorCode(),
		Message: cerr.Error(),
	})
}
