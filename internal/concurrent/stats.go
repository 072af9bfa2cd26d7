package concurrent

import (
	"sync"
	"time"
)

// Stats, yazıcının kümülatif sayaçlarının anlık kopyasıdır.
// QueueHighWater, kuyruğun gözlenen en yüksek derinliğidir; kuyruk
// kapasitesine yaklaşıyorsa WRITER_QUEUE_SIZE artırılmalıdır.
type Stats struct {
	Submitted      int64
	Completed      int64
	Failed         int64
	Rejected       int64
	QueueHighWater int
	AvgProcessTime time.Duration
}

// Tek tüketici goroutine olsa da Submit her çağıran goroutine'den
// gelir; sayaçlar tek mutex ile korunur.
type statsCollector struct {
	mutex          sync.Mutex
	submitted      int64
	completed      int64
	failed         int64
	rejected       int64
	queueHighWater int
	totalProcTime  time.Duration
}

func newStatsCollector() *statsCollector {
	return &statsCollector{}
}

func (sc *statsCollector) recordSubmitted(queueDepth int) {
	sc.mutex.Lock()
	defer sc.mutex.Unlock()

	sc.submitted++
	if queueDepth > sc.queueHighWater {
		sc.queueHighWater = queueDepth
	}
}

func (sc *statsCollector) recordRejected() {
	sc.mutex.Lock()
	defer sc.mutex.Unlock()

	sc.rejected++
}

func (sc *statsCollector) recordCompleted(d time.Duration) {
	sc.mutex.Lock()
	defer sc.mutex.Unlock()

	sc.completed++
	sc.totalProcTime += d
}

func (sc *statsCollector) recordFailed() {
	sc.mutex.Lock()
	defer sc.mutex.Unlock()

	sc.failed++
}

func (sc *statsCollector) snapshot() Stats {
	sc.mutex.Lock()
	defer sc.mutex.Unlock()

	stats := Stats{
		Submitted:      sc.submitted,
		Completed:      sc.completed,
		Failed:         sc.failed,
		Rejected:       sc.rejected,
		QueueHighWater: sc.queueHighWater,
	}

	if sc.completed > 0 {
		stats.AvgProcessTime = sc.totalProcTime / time.Duration(sc.completed)
	}

	return stats
}
