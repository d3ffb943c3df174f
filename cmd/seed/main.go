package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/lib/pq"
	"github.com/schollz/progressbar/v3"

	"github.com/vfg2006/churn-analysis-api/internal/domain"
	"github.com/vfg2006/churn-analysis-api/internal/generator"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const customersSchema = `
CREATE TABLE IF NOT EXISTS customers (
	customer_id     TEXT PRIMARY KEY,
	gender          TEXT,
	contract        TEXT,
	payment_method  TEXT,
	tenure          TEXT,
	monthly_charges TEXT,
	total_charges   TEXT,
	churn           TEXT,
	features        JSONB
)`

const modelArtifactsSchema = `
CREATE TABLE IF NOT EXISTS model_artifacts (
	version    TEXT PRIMARY KEY,
	artifact   JSONB NOT NULL,
	trained_at TIMESTAMPTZ NOT NULL,
	is_current BOOLEAN NOT NULL DEFAULT FALSE
)`

func setupLogger() {
	// Configura o logger para incluir data, hora e arquivo
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Println("Iniciando seed de clientes sintéticos...")
}

func main() {
	setupLogger()

	count := flag.Int("count", 5000, "quantidade de clientes a gerar")
	seed := flag.Int64("seed", 42, "semente do gerador, a mesma semente produz o mesmo lote")
	dsn := flag.String("dsn", os.Getenv("DATABASE_URL"), "string de conexão com o Postgres")
	truncate := flag.Bool("truncate", false, "limpa a tabela de clientes antes de inserir")
	flag.Parse()

	if *dsn == "" {
		log.Fatal("ERRO: informe -dsn ou defina DATABASE_URL")
	}

	db, err := sql.Open("postgres", *dsn)
	if err != nil {
		log.Fatalf("ERRO ao abrir conexão: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("ERRO ao conectar no banco: %v", err)
	}

	if err := ensureSchema(db); err != nil {
		log.Fatalf("ERRO ao preparar o schema: %v", err)
	}

	customers := generator.New(*seed).Generate(*count)
	log.Printf("Gerados %d clientes com seed %d", len(customers), *seed)

	if err := insertCustomers(db, customers, *truncate); err != nil {
		log.Fatalf("ERRO ao inserir clientes: %v", err)
	}
}

func ensureSchema(db *sql.DB) error {
	if _, err := db.Exec(customersSchema); err != nil {
		return fmt.Errorf("tabela customers: %w", err)
	}
	if _, err := db.Exec(modelArtifactsSchema); err != nil {
		return fmt.Errorf("tabela model_artifacts: %w", err)
	}
	return nil
}

func insertCustomers(db *sql.DB, customers []*domain.Customer, truncate bool) error {
	startTime := time.Now()

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("erro ao abrir transação: %w", err)
	}
	defer tx.Rollback()

	if truncate {
		if _, err := tx.Exec(`TRUNCATE TABLE customers`); err != nil {
			return fmt.Errorf("erro ao truncar customers: %w", err)
		}
		log.Println("Tabela customers truncada")
	}

	stmt, err := tx.Prepare(`INSERT INTO customers
		(customer_id, gender, contract, payment_method, tenure, monthly_charges, total_charges, churn, features)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (customer_id) DO NOTHING`)
	if err != nil {
		return fmt.Errorf("erro ao preparar statement: %w", err)
	}
	defer stmt.Close()

	bar := progressbar.Default(int64(len(customers)))

	successCount := 0
	errorCount := 0
	for i, c := range customers {
		features, err := json.Marshal(c.Features)
		if err != nil {
			log.Printf("ERRO ao serializar features do cliente [%d/%d] %s: %v", i+1, len(customers), c.ID, err)
			errorCount++
			_ = bar.Add(1)
			continue
		}

		churn := domain.ChurnNo
		if c.Churned {
			churn = domain.ChurnYes
		}

		// Os numéricos são gravados como texto, preservando o formato da
		// carga original que o gateway de leitura valida e converte
		_, err = stmt.Exec(
			c.ID,
			c.Gender,
			c.Contract,
			c.PaymentMethod,
			fmt.Sprintf("%.0f", c.Tenure),
			fmt.Sprintf("%.2f", c.MonthlyCharges),
			fmt.Sprintf("%.2f", c.TotalCharges),
			churn,
			features,
		)
		if err != nil {
			log.Printf("ERRO ao inserir cliente [%d/%d] %s: %v", i+1, len(customers), c.ID, err)
			errorCount++
			_ = bar.Add(1)
			continue
		}

		successCount++
		_ = bar.Add(1)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("erro ao confirmar transação: %w", err)
	}

	elapsed := time.Since(startTime)
	log.Printf("Seed concluído em %v. Sucesso: %d, Erros: %d", elapsed, successCount, errorCount)

	return nil
}
