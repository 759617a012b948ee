package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"reviewlens/internal/config"
	"reviewlens/internal/server"
	"reviewlens/internal/util"
)

var (
	port    = flag.Int("port", 0, "서비스 포트 (config.toml 값보다 우선)")
	devMode = flag.Bool("dev", false, "개발 모드")
)

func main() {
	flag.Parse()

	fmt.Println("==========================================")
	fmt.Println("  ReviewLens - 리뷰 분석 서비스")
	fmt.Println("==========================================")

	// 설정 로드 (.env 포함)
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Printf("설정 로드 실패, 기본 설정 사용: %v", err)
		cfg = config.DefaultConfig()
	}

	// 명령행 인자 덮어쓰기
	if *port > 0 {
		cfg.Server.Port = *port
	}
	if *devMode {
		cfg.Server.DevMode = true
	}

	if config.APIKey() == "" {
		log.Println("경고: OPENAI_API_KEY가 설정되지 않았습니다. 분석 결과가 비어서 반환됩니다.")
	}

	// 서버 생성
	srv := server.NewServer(cfg)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	url := fmt.Sprintf("http://localhost:%d", cfg.Server.Port)

	// 서버 시작
	go func() {
		fmt.Printf("서비스 시작, 포트 %d 대기 중...\n", cfg.Server.Port)
		if err := srv.Run(addr); err != nil {
			log.Fatalf("서비스 시작 실패: %v", err)
		}
	}()

	// 브라우저 열기
	if !cfg.Server.DevMode {
		fmt.Printf("브라우저를 여는 중: %s\n", url)
		if err := util.OpenBrowserWithFallback(url); err != nil {
			fmt.Printf("브라우저를 자동으로 열 수 없습니다. 직접 접속해주세요: %s\n", url)
		}
	} else {
		fmt.Printf("개발 모드: %s 로 접속하세요\n", url)
	}

	fmt.Println("\n종료하려면 Ctrl+C를 누르세요...")

	// 시그널 대기
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("\n서비스를 종료합니다...")
}
