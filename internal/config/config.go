package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// AppConfig 애플리케이션 설정
type AppConfig struct {
	Server  ServerConfig  `toml:"server"`
	OpenAI  OpenAIConfig  `toml:"openai"`
	Upload  UploadConfig  `toml:"upload"`
	Extract ExtractConfig `toml:"extract"`
}

// ServerConfig 서버 설정
type ServerConfig struct {
	Port    int  `toml:"port"`
	DevMode bool `toml:"dev_mode"`
}

// OpenAIConfig 외부 텍스트 생성 서비스 설정
// API 키는 설정 파일이 아니라 환경 변수(OPENAI_API_KEY)에서만 읽는다.
type OpenAIConfig struct {
	Model          string  `toml:"model"`
	Temperature    float64 `toml:"temperature"`
	MaxReviews     int     `toml:"max_reviews"`
	TimeoutSeconds int     `toml:"timeout_seconds"`
}

// UploadConfig 업로드 설정
type UploadConfig struct {
	MaxPreviewRows int `toml:"max_preview_rows"`
}

// ExtractConfig 리뷰 텍스트 추출 설정
type ExtractConfig struct {
	MinTextLength int    `toml:"min_text_length"`
	Separator     string `toml:"separator"`
}

// DefaultConfig 기본 설정
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:    20280,
			DevMode: false,
		},
		OpenAI: OpenAIConfig{
			Model:          "gpt-4o-mini",
			Temperature:    0.3, // 결정적인 출력을 위해 낮게 고정
			MaxReviews:     50,
			TimeoutSeconds: 60,
		},
		Upload: UploadConfig{
			MaxPreviewRows: 10,
		},
		Extract: ExtractConfig{
			MinTextLength: 5,
			Separator:     " / ",
		},
	}
}

// GetExeDir 실행 파일이 있는 디렉터리
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// LoadConfig config.toml에서 설정을 읽어들인다
// 실행 파일과 같은 디렉터리의 config.toml을 사용하고, 없으면 기본 설정을 쓴다.
// 프로젝트 루트의 .env 파일이 있으면 환경 변수로 등록한다 (OPENAI_API_KEY 등).
func LoadConfig() (*AppConfig, error) {
	// .env는 없어도 된다
	_ = godotenv.Load()

	config := DefaultConfig()

	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}

	configPath := filepath.Join(exeDir, "config.toml")

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, config); err != nil {
		return nil, err
	}

	// 환경 변수 덮어쓰기 (E2E / 로컬 실행용)
	if v := os.Getenv("REVIEWLENS_MODEL"); v != "" {
		config.OpenAI.Model = v
	}

	return config, nil
}

// SaveConfig 설정을 config.toml에 저장
func SaveConfig(config *AppConfig) error {
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(exeDir, "config.toml"), data, 0644)
}

// APIKey 환경 변수에서 OpenAI API 키를 읽는다
func APIKey() string {
	return os.Getenv("OPENAI_API_KEY")
}
