package concurrent

import (
	"context"
	"sync"
	"time"

	"eventhive/pkg/logger"
)

type task struct {
	name string
	run  func() error
}

// Writer, tüm yazma işlemlerinin geçtiği tek mantıksal yazıcıdır: tek
// goroutine, gönderim sırasında çalıştırma, bir görev bitmeden diğeri
// başlamaz. Bilet satın almadaki kontrol+ekleme dizisi tek görev olarak
// gönderildiğinde araya başka yazma giremez.
type Writer struct {
	jobQueue chan task
	wg       sync.WaitGroup
	ctx      context.Context
	cancel   context.CancelFunc
	logger   logger.Logger
	started  bool
	mutex    sync.Mutex
	stats    *statsCollector
}

func NewWriter(queueSize int, logger logger.Logger) *Writer {
	ctx, cancel := context.WithCancel(context.Background())

	return &Writer{
		jobQueue: make(chan task, queueSize),
		ctx:      ctx,
		cancel:   cancel,
		logger:   logger,
		started:  false,
		stats:    newStatsCollector(),
	}
}

func (w *Writer) Start() {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if w.started {
		return
	}

	w.logger.Info("Yazıcı başlatılıyor", map[string]interface{}{
		"queue_size": cap(w.jobQueue),
	})

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		w.loop()
	}()

	w.started = true
}

// Stop kanalı mutex altında kapatır; eşzamanlı bir Submit ya kapanıştan
// önce gönderir ya da started bayrağını görüp false döner, kapalı
// kanala gönderim olmaz.
func (w *Writer) Stop() {
	w.mutex.Lock()
	if !w.started {
		w.mutex.Unlock()
		return
	}
	w.started = false
	close(w.jobQueue)
	w.mutex.Unlock()

	w.logger.Info("Yazıcı durduruluyor", map[string]interface{}{})
	w.wg.Wait()
	w.cancel()
}

// Submit bloklamaz; kuyruk dolu veya yazıcı durmuşsa false döner.
func (w *Writer) Submit(name string, run func() error) bool {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if !w.started {
		return false
	}

	select {
	case w.jobQueue <- task{name: name, run: run}:
		w.stats.recordSubmitted(len(w.jobQueue))
		w.logger.Debug("Görev kuyruğa eklendi", map[string]interface{}{"task": name})
		return true
	default:
		w.stats.recordRejected()
		w.logger.Warn("Yazıcı kuyruğu dolu, görev reddedildi", map[string]interface{}{"task": name})
		return false
	}
}

func (w *Writer) loop() {
	for t := range w.jobQueue {
		startTime := time.Now()

		err := t.run()

		processingTime := time.Since(startTime)

		if err != nil {
			w.stats.recordFailed()
			w.logger.Error("Görev başarısız oldu", map[string]interface{}{
				"task":            t.name,
				"error":           err.Error(),
				"processing_time": processingTime.String(),
			})
		} else {
			w.stats.recordCompleted(processingTime)
			w.logger.Debug("Görev tamamlandı", map[string]interface{}{
				"task":            t.name,
				"processing_time": processingTime.String(),
			})
		}
	}
}

func (w *Writer) GetStats() Stats {
	return w.stats.snapshot()
}

func (w *Writer) QueueLength() int {
	return len(w.jobQueue)
}

func (w *Writer) QueueCapacity() int {
	return cap(w.jobQueue)
}
