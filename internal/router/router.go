package router

import (
	"time"

	"github.com/Projeto-SmartPark/smartpark-backend-sub000/internal/config"
	"github.com/Projeto-SmartPark/smartpark-backend-sub000/internal/handler"
	"github.com/Projeto-SmartPark/smartpark-backend-sub000/internal/middleware"
	"github.com/Projeto-SmartPark/smartpark-backend-sub000/internal/repository"
	"github.com/Projeto-SmartPark/smartpark-backend-sub000/internal/service"
	"github.com/Projeto-SmartPark/smartpark-backend-sub000/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(cfg.CORSOrigin))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	clienteRepo := repository.NewClienteRepository(db)
	gestorRepo := repository.NewGestorRepository(db)
	estacionamentoRepo := repository.NewEstacionamentoRepository(db)
	vagaRepo := repository.NewVagaRepository(db)
	veiculoRepo := repository.NewVeiculoRepository(db)
	reservaRepo := repository.NewReservaRepository(db)
	tarifaRepo := repository.NewTarifaRepository(db)
	registroRepo := repository.NewRegistroAcessoRepository(db)

	// Worker dispatcher — injected into services that enqueue async jobs
	dispatcher := worker.NewDispatcher(rdb)

	// ── Services ─────────────────────────────────────────────────────────────
	usuarioSvc := service.NewUsuarioService(usuarioRepo, clienteRepo, gestorRepo)
	clienteSvc := service.NewClienteService(clienteRepo)
	gestorSvc := service.NewGestorService(gestorRepo)
	estacionamentoSvc := service.NewEstacionamentoService(estacionamentoRepo)
	vagaSvc := service.NewVagaService(vagaRepo, estacionamentoRepo)
	veiculoSvc := service.NewVeiculoService(veiculoRepo)
	reservaSvc := service.NewReservaService(reservaRepo, vagaRepo, veiculoRepo, clienteRepo, dispatcher)
	tarifaSvc := service.NewTarifaService(tarifaRepo, estacionamentoRepo)
	registroSvc := service.NewRegistroAcessoService(registroRepo, veiculoRepo, vagaRepo, tarifaRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	usuariosH := handler.NewUsuariosHandler(usuarioSvc)
	clientesH := handler.NewClientesHandler(clienteSvc)
	gestoresH := handler.NewGestoresHandler(gestorSvc)
	estacionamentosH := handler.NewEstacionamentosHandler(estacionamentoSvc)
	vagasH := handler.NewVagasHandler(vagaSvc)
	veiculosH := handler.NewVeiculosHandler(veiculoSvc)
	reservasH := handler.NewReservasHandler(reservaSvc)
	tarifasH := handler.NewTarifasHandler(tarifaSvc)
	registrosH := handler.NewRegistrosHandler(registroSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Signup (public) — tokens come from the auth service, not from here
	r.POST("/v1/usuarios", middleware.CadastroRateLimiter(), usuariosH.Criar)

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		usuarios := v1.Group("/usuarios")
		{
			usuarios.GET("/:id", usuariosH.BuscarPorID)
			usuarios.DELETE("/:id", usuariosH.Remover)
		}

		clientes := v1.Group("/clientes")
		{
			clientes.GET("/me", middleware.RequirePerfil("CLIENTE"), clientesH.Perfil)
			clientes.GET("", middleware.RequirePerfil("GESTOR"), clientesH.Listar)
			clientes.GET("/:id", clientesH.BuscarPorID)
			clientes.PUT("/:id", middleware.RequirePerfil("CLIENTE"), clientesH.Atualizar)
		}

		gestores := v1.Group("/gestores")
		{
			gestores.GET("/me", middleware.RequirePerfil("GESTOR"), gestoresH.Perfil)
			gestores.GET("", gestoresH.Listar)
			gestores.GET("/:id", gestoresH.BuscarPorID)
			gestores.PUT("/:id", middleware.RequirePerfil("GESTOR"), gestoresH.Atualizar)
		}

		// Estacionamentos — any authenticated user can browse, only the owning
		// gestor can mutate (enforced again in the service layer)
		v1.GET("/estacionamentos", estacionamentosH.Listar)
		v1.GET("/estacionamentos/:id", estacionamentosH.BuscarPorID)
		v1.GET("/estacionamentos/:id/vagas", vagasH.ListarPorEstacionamento)
		v1.GET("/estacionamentos/:id/tarifas", tarifasH.ListarPorEstacionamento)
		est := v1.Group("/estacionamentos", middleware.RequirePerfil("GESTOR"))
		{
			est.POST("", estacionamentosH.Criar)
			est.GET("/meus", estacionamentosH.ListarMeus)
			est.PUT("/:id", estacionamentosH.Atualizar)
			est.DELETE("/:id", estacionamentosH.Remover)
		}

		vagas := v1.Group("/vagas", middleware.RequirePerfil("GESTOR"))
		{
			vagas.POST("", vagasH.Criar)
			vagas.PUT("/:id", vagasH.Atualizar)
			vagas.DELETE("/:id", vagasH.Remover)
		}

		tarifas := v1.Group("/tarifas", middleware.RequirePerfil("GESTOR"))
		{
			tarifas.POST("", tarifasH.Criar)
			tarifas.PUT("/:id", tarifasH.Atualizar)
			tarifas.DELETE("/:id", tarifasH.Remover)
		}

		veiculos := v1.Group("/veiculos", middleware.RequirePerfil("CLIENTE"))
		{
			veiculos.POST("", veiculosH.Criar)
			veiculos.GET("", veiculosH.Listar)
			veiculos.PUT("/:id", veiculosH.Atualizar)
			veiculos.DELETE("/:id", veiculosH.Remover)
		}

		reservas := v1.Group("/reservas", middleware.RequirePerfil("CLIENTE"))
		{
			reservas.POST("", reservasH.Criar)
			reservas.GET("", reservasH.Listar)
			reservas.GET("/disponibilidade", reservasH.Disponibilidade)
			reservas.PUT("/:id", reservasH.Atualizar)
			reservas.DELETE("/:id", reservasH.Cancelar)
		}

		registros := v1.Group("/registros", middleware.RequirePerfil("GESTOR"))
		{
			registros.POST("/entrada", registrosH.RegistrarEntrada)
			registros.POST("/:id/saida", registrosH.RegistrarSaida)
			registros.GET("/abertos", registrosH.ListarAbertos)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
