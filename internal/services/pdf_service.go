package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"go.uber.org/zap"

	"climate-repair/pkg/config"
)

type PDFServiceInterface interface {
	GeneratePDF(ctx context.Context, html string) ([]byte, error)
	Close()
}

// pdfService держит один headless-браузер на процесс и открывает
// по вкладке на каждый вызов. Браузер поднимается лениво при первом
// экспорте, чтобы не платить за Chrome на старте сервиса.
type pdfService struct {
	cfg    config.PDFConfig
	logger *zap.Logger

	mu          sync.Mutex
	allocCtx    context.Context
	allocCancel context.CancelFunc
}

func NewPDFService(cfg config.PDFConfig, logger *zap.Logger) PDFServiceInterface {
	return &pdfService{cfg: cfg, logger: logger}
}

func (s *pdfService) allocator() context.Context {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.allocCtx == nil {
		opts := append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.NoSandbox,
			chromedp.DisableGPU,
		)
		if s.cfg.BrowserPath != "" {
			opts = append(opts, chromedp.ExecPath(s.cfg.BrowserPath))
		}
		s.allocCtx, s.allocCancel = chromedp.NewExecAllocator(context.Background(), opts...)
		s.logger.Info("Запущен headless-браузер для генерации PDF")
	}
	return s.allocCtx
}

// GeneratePDF печатает готовую HTML-разметку в PDF формата A4.
// Поля совпадают с вёрсткой HTML-страницы отчёта: 20мм сверху и снизу,
// 15мм по бокам.
func (s *pdfService) GeneratePDF(ctx context.Context, html string) ([]byte, error) {
	tabCtx, cancel := chromedp.NewContext(s.allocator())
	defer cancel()

	if s.cfg.Timeout > 0 {
		var timeoutCancel context.CancelFunc
		tabCtx, timeoutCancel = context.WithTimeout(tabCtx, s.cfg.Timeout)
		defer timeoutCancel()
	}

	var pdf []byte
	err := chromedp.Run(tabCtx,
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				WithMarginTop(0.79).
				WithMarginBottom(0.79).
				WithMarginLeft(0.59).
				WithMarginRight(0.59).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("печать PDF: %w", err)
	}
	return pdf, nil
}

// Close гасит браузер; вызывается при остановке сервиса.
func (s *pdfService) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.allocCancel != nil {
		s.allocCancel()
		s.allocCtx = nil
		s.allocCancel = nil
	}
}
