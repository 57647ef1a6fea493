package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/diillson/prepaid-meter-dashboard-go/internal/domain/numeric"
	"github.com/diillson/prepaid-meter-dashboard-go/internal/domain/repository"
	"github.com/diillson/prepaid-meter-dashboard-go/internal/shared/types"
	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
)

// Valores aplicados quando o arquivo omite os campos correspondentes.
const (
	DefaultCurrency     = "GHS"
	DefaultHorizon      = 5
	DefaultReductionMax = 0.5
)

// ConfigRepositoryImpl implementa o ConfigRepository.
type ConfigRepositoryImpl struct{}

// NewConfigRepository cria uma nova implementação do ConfigRepository.
func NewConfigRepository() repository.ConfigRepository {
	return &ConfigRepositoryImpl{}
}

// LoadConfigFile carrega um arquivo de configuração TOML, YAML ou JSON e
// aplica os padrões documentados aos campos omitidos.
func (r *ConfigRepositoryImpl) LoadConfigFile(filePath string) (*types.Config, error) {
	fileExtension := filepath.Ext(filePath)
	fileExtension = strings.ToLower(fileExtension)

	// Verifica se o arquivo existe
	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("error accessing config file: %w", err)
	}

	if fileInfo.IsDir() {
		return nil, fmt.Errorf("%s is a directory, not a file", filePath)
	}

	// Lê o arquivo
	fileData, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config types.Config

	switch fileExtension {
	case ".toml":
		if err := toml.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing TOML file: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing YAML file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing JSON file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config file format: %s", fileExtension)
	}

	ApplyDefaults(&config)
	return &config, nil
}

// ApplyDefaults preenche os campos zero com os padrões documentados. A
// validação semântica (tarifa positiva, dias crescentes) fica no caso de uso.
func ApplyDefaults(config *types.Config) {
	if config.Currency == "" {
		config.Currency = DefaultCurrency
	}
	if config.Horizon == 0 {
		config.Horizon = DefaultHorizon
	}
	if config.ReductionMax == 0 {
		config.ReductionMax = DefaultReductionMax
	}
	if config.Solver.BisectionTolerance == 0 {
		config.Solver.BisectionTolerance = numeric.DefaultTolerance
	}
	if config.Solver.GoldenTolerance == 0 {
		config.Solver.GoldenTolerance = numeric.DefaultTolerance
	}
	if config.Solver.MaxIterations == 0 {
		config.Solver.MaxIterations = numeric.DefaultMaxIterations
	}
	if len(config.ReportType) == 0 {
		config.ReportType = []string{"csv"}
	}
}
