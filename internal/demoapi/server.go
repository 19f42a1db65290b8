package demoapi

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/kelola-aset/kelola/internal/model"
)

const tokenTTL = 12 * time.Hour

// Server serves the demo manage-aset API.
type Server struct {
	addr     string
	secret   []byte
	store    *Store
	server   *http.Server
	listener net.Listener
	ctx      context.Context
	cancel   context.CancelFunc
}

// NewServer creates a demo server. Pass addr ":0" to bind an ephemeral
// port and read it back with Addr after Start.
func NewServer(addr string, secret string, store *Store) *Server {
	if addr == "" {
		addr = "0.0.0.0:8600"
	}
	if store == nil {
		store = NewStore()
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{
		addr:   addr,
		secret: []byte(secret),
		store:  store,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Start begins serving HTTP requests.
func (s *Server) Start() error {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	r.POST("/api/v1/auth/login", s.handleLogin)

	api := r.Group("/api/v1/manage-aset", s.requireAuth)
	api.GET("/aset", s.handleListAssets)
	api.GET("/aset/:id", s.handleGetAsset)
	api.POST("/aset", s.handleCreateAsset)
	api.PUT("/aset/:id", s.handleUpdateAsset)
	api.DELETE("/aset/:id", s.handleDeleteAsset)

	api.GET("/vendor", s.handleListVendors)
	api.GET("/admin", s.handleListAdmins)

	api.GET("/pelihara", s.handleListMaintenance)
	api.GET("/pelihara/riwayat", s.handleListHistory)
	api.GET("/pelihara/:id", s.handleGetMaintenance(model.SourceScheduled))
	api.PUT("/pelihara/:id", s.handleUpdateMaintenance)
	api.DELETE("/pelihara/:id", s.handleDeleteMaintenance(model.SourceScheduled))
	api.GET("/darurat/:id", s.handleGetMaintenance(model.SourceEmergency))
	api.DELETE("/darurat/:id", s.handleDeleteMaintenance(model.SourceEmergency))

	api.GET("/rencana", s.handleListPlans)
	api.PUT("/rencana/:id", s.handleUpdatePlan)
	api.DELETE("/rencana/:id", s.handleDeletePlan)

	api.GET("/fasilitas", s.handleListFacilities)
	api.DELETE("/fasilitas/:id", s.handleDeleteFacility)

	s.server = &http.Server{
		Handler:           r,
		BaseContext:       func(_ net.Listener) context.Context { return s.ctx },
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
	}

	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	s.listener = listener

	go s.server.Serve(listener)
	return nil
}

// Addr returns the bound address, useful with ":0".
func (s *Server) Addr() string {
	if s.listener == nil {
		return s.addr
	}
	return s.listener.Addr().String()
}

// Stop gracefully shuts down the server.
func (s *Server) Stop() error {
	s.cancel()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

func (s *Server) handleLogin(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": http.StatusBadRequest, "message": "email dan password wajib diisi"})
		return
	}

	user, ok := s.store.Authenticate(req.Email, req.Password)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"status": http.StatusUnauthorized, "message": "email atau password salah"})
		return
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   user.ID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": http.StatusInternalServerError, "message": "gagal membuat token"})
		return
	}

	ok200(c, "login berhasil", gin.H{
		"access_token": token,
		"user":         user,
	})
}

// requireAuth rejects requests without a valid bearer token.
func (s *Server) requireAuth(c *gin.Context) {
	auth := c.GetHeader("Authorization")
	raw, found := strings.CutPrefix(auth, "Bearer ")
	if !found || raw == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": http.StatusUnauthorized, "message": "token tidak ditemukan"})
		return
	}

	_, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": http.StatusUnauthorized, "message": "token tidak valid"})
		return
	}
	c.Next()
}

func (s *Server) handleListAssets(c *gin.Context) {
	ok200(c, "daftar aset", s.store.Assets())
}

func (s *Server) handleGetAsset(c *gin.Context) {
	a, found := s.store.AssetByID(c.Param("id"))
	if !found {
		notFound(c, "aset tidak ditemukan")
		return
	}
	ok200(c, "detail aset", a)
}

func (s *Server) handleCreateAsset(c *gin.Context) {
	a := model.Asset{ID: uuid.NewString()}
	if err := s.bindAsset(c, &a); err != nil {
		badRequest(c, err.Error())
		return
	}
	s.store.AddAsset(a)
	ok200(c, "aset dibuat", a)
}

func (s *Server) handleUpdateAsset(c *gin.Context) {
	existing, found := s.store.AssetByID(c.Param("id"))
	if !found {
		notFound(c, "aset tidak ditemukan")
		return
	}
	if err := s.bindAsset(c, &existing); err != nil {
		badRequest(c, err.Error())
		return
	}
	s.store.ReplaceAsset(existing)
	ok200(c, "aset diperbarui", existing)
}

// bindAsset fills a from either a JSON body or the multipart form the
// editor submits when an image is attached. Field names follow the
// upstream form contract, not the model's json tags.
func (s *Server) bindAsset(c *gin.Context, a *model.Asset) error {
	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		form, err := c.MultipartForm()
		if err != nil {
			return err
		}
		value := func(name string) string {
			if vs := form.Value[name]; len(vs) > 0 {
				return vs[0]
			}
			return ""
		}
		a.VendorID = value("VendorID")
		a.Name = value("NamaAset")
		a.Category = value("kategori")
		a.Brand = value("MerekAset")
		a.ProductionCode = value("kode")
		a.ProductionYear = value("TahunProduksi")
		a.Description = value("deskripsi")
		if n, err := strconv.Atoi(value("jumlah")); err == nil {
			a.Quantity = n
		}
		a.IntakeDate = value("asetmasuk")
		a.WarrantyStart = value("garansidimulai")
		a.WarrantyEnd = value("GaransiBerakhir")
		if fhs := form.File["gambar"]; len(fhs) > 0 {
			a.Image = model.AssetImage{ImageURL: "/uploads/" + fhs[0].Filename}
		}
		return nil
	}

	var req struct {
		VendorID       string `json:"VendorID"`
		Name           string `json:"NamaAset"`
		Category       string `json:"kategori"`
		Brand          string `json:"MerekAset"`
		SerialCode     string `json:"kode"`
		ProductionYear string `json:"TahunProduksi"`
		Description    string `json:"deskripsi"`
		Quantity       string `json:"jumlah"`
		IntakeDate     string `json:"asetmasuk"`
		WarrantyStart  string `json:"garansidimulai"`
		WarrantyEnd    string `json:"GaransiBerakhir"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return err
	}
	a.VendorID = req.VendorID
	a.Name = req.Name
	a.Category = req.Category
	a.Brand = req.Brand
	a.ProductionCode = req.SerialCode
	a.ProductionYear = req.ProductionYear
	a.Description = req.Description
	if n, err := strconv.Atoi(req.Quantity); err == nil {
		a.Quantity = n
	}
	a.IntakeDate = req.IntakeDate
	a.WarrantyStart = req.WarrantyStart
	a.WarrantyEnd = req.WarrantyEnd
	return nil
}

func (s *Server) handleDeleteAsset(c *gin.Context) {
	if !s.store.DeleteAsset(c.Param("id")) {
		notFound(c, "aset tidak ditemukan")
		return
	}
	ok200(c, "aset dihapus", nil)
}

func (s *Server) handleListVendors(c *gin.Context) {
	ok200(c, "daftar vendor", s.store.Vendors())
}

func (s *Server) handleListAdmins(c *gin.Context) {
	ok200(c, "daftar admin", s.store.Admins())
}

// handleListMaintenance serves the one envelope with two collections.
func (s *Server) handleListMaintenance(c *gin.Context) {
	scheduled, emergency := s.store.Maintenance()
	c.JSON(http.StatusOK, gin.H{
		"status":            http.StatusOK,
		"message":           "daftar pemeliharaan",
		"data_darurat":      emergency,
		"data_pemeliharaan": scheduled,
	})
}

func (s *Server) handleGetMaintenance(source model.MaintenanceSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		rec, found := s.store.MaintenanceByID(c.Param("id"), source)
		if !found {
			notFound(c, "data pemeliharaan tidak ditemukan")
			return
		}
		ok200(c, "detail pemeliharaan", rec)
	}
}

func (s *Server) handleUpdateMaintenance(c *gin.Context) {
	var req struct {
		ConditionAfter  string `json:"kondisi_stlh_perbaikan"`
		Status          string `json:"status_pemeliharaan"`
		Responsible     string `json:"penanggung_jawab"`
		Description     string `json:"deskripsi"`
		PerformedDate   string `json:"tgl_dilakukan"`
		MaintenanceTime string `json:"waktu_pemeliharaan"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	rec, found := s.store.UpdateMaintenanceByPlan(c.Param("id"), func(r *model.MaintenanceRecord) {
		r.ConditionAfter = req.ConditionAfter
		r.Status = req.Status
		r.Responsible = req.Responsible
		r.Description = req.Description
		r.PerformedDate = req.PerformedDate
		r.MaintenanceTime = req.MaintenanceTime
	})
	if !found {
		notFound(c, "data pemeliharaan tidak ditemukan")
		return
	}
	ok200(c, "pemeliharaan diperbarui", rec)
}

func (s *Server) handleDeleteMaintenance(source model.MaintenanceSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !s.store.DeleteMaintenance(c.Param("id"), source) {
			notFound(c, "data pemeliharaan tidak ditemukan")
			return
		}
		ok200(c, "pemeliharaan dihapus", nil)
	}
}

func (s *Server) handleListHistory(c *gin.Context) {
	ok200(c, "riwayat pemeliharaan", s.store.History())
}

func (s *Server) handleListPlans(c *gin.Context) {
	ok200(c, "daftar rencana", s.store.Plans())
}

func (s *Server) handleUpdatePlan(c *gin.Context) {
	var req struct {
		Description string `json:"deskripsi"`
		PlannedDate string `json:"tgl_perencanaan"`
		Status      string `json:"status_aset"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	plan, found := s.store.UpdatePlan(c.Param("id"), func(p *model.MaintenancePlan) {
		if req.Description != "" {
			p.Description = req.Description
		}
		if req.PlannedDate != "" {
			p.PlannedDate = req.PlannedDate
		}
		if req.Status != "" {
			p.Status = req.Status
		}
	})
	if !found {
		notFound(c, "rencana tidak ditemukan")
		return
	}
	ok200(c, "rencana diperbarui", plan)
}

func (s *Server) handleDeletePlan(c *gin.Context) {
	if !s.store.DeletePlan(c.Param("id")) {
		notFound(c, "rencana tidak ditemukan")
		return
	}
	ok200(c, "rencana dihapus", nil)
}

func (s *Server) handleListFacilities(c *gin.Context) {
	ok200(c, "daftar fasilitas", s.store.Facilities())
}

func (s *Server) handleDeleteFacility(c *gin.Context) {
	if !s.store.DeleteFacility(c.Param("id")) {
		notFound(c, "fasilitas tidak ditemukan")
		return
	}
	ok200(c, "fasilitas dihapus", nil)
}

func ok200(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, gin.H{"status": http.StatusOK, "message": message, "data": data})
}

func notFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, gin.H{"status": http.StatusNotFound, "message": message})
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"status": http.StatusBadRequest, "message": message})
}
