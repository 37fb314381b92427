package backup

import (
	"context"
	"time"

	"github.com/thabi/crm-distribuidora/pkg/logger"
)

// Scheduler dispara o backup completo em intervalos fixos. O primeiro
// backup sai imediatamente no Start.
type Scheduler struct {
	service  *Service
	interval time.Duration
	log      logger.Logger
	stop     chan struct{}
	done     chan struct{}
}

// NewScheduler cria o agendador de backups
func NewScheduler(service *Service, interval time.Duration, log logger.Logger) *Scheduler {
	return &Scheduler{
		service:  service,
		interval: interval,
		log:      log,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start inicia o ciclo de backups em segundo plano
func (s *Scheduler) Start() {
	s.log.Info("backup automático configurado", "intervalo", s.interval.String())

	go func() {
		defer close(s.done)

		s.run()

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.run()
			case <-s.stop:
				return
			}
		}
	}()
}

// Stop encerra o agendador e espera o ciclo corrente terminar
func (s *Scheduler) Stop() {
	close(s.stop)
	<-s.done
}

func (s *Scheduler) run() {
	if _, err := s.service.Run(context.Background()); err != nil {
		s.log.Error("erro no backup automático", "error", err)
	}
}
