package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/churn-analysis-api/infrastructure/database/postgres"
	"github.com/vfg2006/churn-analysis-api/infrastructure/integrator/openai"
	"github.com/vfg2006/churn-analysis-api/infrastructure/integrator/openai/openaiclient"
	"github.com/vfg2006/churn-analysis-api/infrastructure/repository"
	"github.com/vfg2006/churn-analysis-api/internal/api"
	"github.com/vfg2006/churn-analysis-api/internal/config"
	"github.com/vfg2006/churn-analysis-api/internal/scheduler"
	"github.com/vfg2006/churn-analysis-api/internal/usecases/aggregating"
	"github.com/vfg2006/churn-analysis-api/internal/usecases/insighting"
	"github.com/vfg2006/churn-analysis-api/internal/usecases/serving"
	"github.com/vfg2006/churn-analysis-api/internal/usecases/training"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	customerRepo := repository.NewCustomerRepository(pgConn)
	artifactRepo := repository.NewModelArtifactRepository(pgConn)

	aggregatorService := aggregating.NewService(cfg, customerRepo)
	trainerService := training.NewService(cfg, customerRepo)
	modelServer := serving.NewService(trainerService, artifactRepo)

	// Recarrega o artefato corrente, se um treinamento anterior existir
	if err := modelServer.Load(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao carregar o modelo baseline persistido")
	}

	openaiClient := openaiclient.NewClient(cfg)
	insightGenerator := openai.New(cfg, openaiClient)

	insightService := insighting.NewService(aggregatorService, modelServer, insightGenerator)

	retrainSyncService := scheduler.NewModelRetrainSyncService(modelServer, cfg)

	if err := retrainSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de retreino do modelo")
	} else {
		logrus.Info("Agendador de retreino do modelo iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		aggregatorService,
		modelServer,
		insightService,
		retrainSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
