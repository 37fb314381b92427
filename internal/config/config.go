package config

import (
	"os"
	"strconv"
	"time"
)

// Config contém as configurações da aplicação
type Config struct {
	Port           string
	DataDir        string
	ReportsDir     string
	BackupDir      string
	BackupInterval time.Duration
}

// NewConfigFromEnv cria uma nova configuração a partir de variáveis de ambiente
func NewConfigFromEnv() *Config {
	horas, _ := strconv.Atoi(getEnv("BACKUP_INTERVAL_HOURS", "6"))
	if horas <= 0 {
		horas = 6
	}

	return &Config{
		Port:           getEnv("PORT", "8080"),
		DataDir:        getEnv("DATA_DIR", "data"),
		ReportsDir:     getEnv("REPORTS_DIR", "relatorios"),
		BackupDir:      getEnv("BACKUP_DIR", "data/backups"),
		BackupInterval: time.Duration(horas) * time.Hour,
	}
}

// getEnv retorna o valor da variável de ambiente ou o valor padrão
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
