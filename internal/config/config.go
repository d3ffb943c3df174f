package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Database    Database    `mapstructure:",squash"`
	Training    Training    `mapstructure:",squash"`
	RetrainSync RetrainSync `mapstructure:",squash"`
	OpenAI      OpenAI      `mapstructure:",squash"`
	Bins        Bins        `mapstructure:"-"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Training struct {
	TestRatio    float64 `mapstructure:"training_test_ratio"`
	Seed         int64   `mapstructure:"training_seed"`
	Epochs       int     `mapstructure:"training_epochs"`
	LearningRate float64 `mapstructure:"training_learning_rate"`
	L2Penalty    float64 `mapstructure:"training_l2_penalty"`
	TopFeatures  int     `mapstructure:"training_top_features"`
}

type RetrainSync struct {
	CronSchedule string `mapstructure:"model_retrain_sync_cron"`
	Enabled      bool   `mapstructure:"model_retrain_sync_enabled"`
}

type OpenAI struct {
	URL    string `mapstructure:"openai_url"`
	APIKey string `mapstructure:"openai_api_key"`
	Model  string `mapstructure:"openai_model"`
}

// Bins define as faixas usadas nas distribuições de tenure e mensalidade.
// Os valores são fixos na aplicação e não vêm de variáveis de ambiente.
type Bins struct {
	TenureEdges   []float64
	TenureLabels  []string
	MonthlyEdges  []float64
	MonthlyLabels []string
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/churn")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	// Defaults para o treinamento do modelo baseline
	viper.SetDefault("TRAINING_TEST_RATIO", 0.2)   // 20% dos registros para teste
	viper.SetDefault("TRAINING_SEED", 42)          // semente fixa para reprodutibilidade
	viper.SetDefault("TRAINING_EPOCHS", 400)       // iterações do gradiente
	viper.SetDefault("TRAINING_LEARNING_RATE", 0.1)
	viper.SetDefault("TRAINING_L2_PENALTY", 0.001)
	viper.SetDefault("TRAINING_TOP_FEATURES", 10) // quantidade de features no ranking

	// Defaults para o retreinamento agendado
	viper.SetDefault("MODEL_RETRAIN_SYNC_CRON", "0 3 * * *") // Todos os dias às 3h da manhã
	viper.SetDefault("MODEL_RETRAIN_SYNC_ENABLED", false)    // Habilitar retreinamento agendado

	viper.SetDefault("OPENAI_URL", "https://api.openai.com/v1")
	viper.SetDefault("OPENAI_API_KEY", "")
	viper.SetDefault("OPENAI_MODEL", "gpt-4o")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Bins = DefaultBins()

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// DefaultBins retorna as faixas padrão de tenure (meses) e mensalidade.
// O limite superior de cada faixa é inclusivo e a última faixa é aberta.
func DefaultBins() Bins {
	return Bins{
		TenureEdges:   []float64{12, 24, 48},
		TenureLabels:  []string{"0-12", "13-24", "25-48", "49+"},
		MonthlyEdges:  []float64{35, 65, 95},
		MonthlyLabels: []string{"0-35", "36-65", "66-95", "96+"},
	}
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Info("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
