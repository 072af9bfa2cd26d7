package database

import (
	"database/sql"
	"fmt"

	"eventhive/internal/domain"
	"eventhive/pkg/logger"
	"eventhive/pkg/password"
)

// Adım fonksiyonu depoyu bir önceki sürümden hedef sürüme taşır; her
// adım kendi transaction'ı içinde çalışır.
type stepFunc func(tx *sql.Tx) error

type Result struct {
	FromVersion int
	ToVersion   int
	Created     bool
	DataReset   bool
}

type Migrator struct {
	db     *sql.DB
	logger logger.Logger
	seed   bool
	steps  map[int]stepFunc
}

func NewMigrator(db *sql.DB, logger logger.Logger, seed bool) *Migrator {
	return &Migrator{
		db:     db,
		logger: logger,
		seed:   seed,
		steps: map[int]stepFunc{
			2: stepAddEventCommerceColumns,
			3: stepCreateNotificationsTable,
			4: stepAddEventTimestampColumn,
			5: stepRebuildTicketsTable,
			6: stepAddUserRemoteUID,
		},
	}
}

// Run, depoyu kayıtlı sürümden katalog sürümüne taşır. Tanımsız veya
// başarısız bir adımda yıkıcı yeniden oluşturma yapılır ve bu durum
// domain.ErrDataReset ile ayrıca raporlanır; depo kullanılabilir kalır.
func (m *Migrator) Run() (Result, error) {
	version, err := m.currentVersion()
	if err != nil {
		return Result{}, fmt.Errorf("şema sürümü okunamadı: %w", err)
	}

	result := Result{FromVersion: version, ToVersion: SchemaVersion}

	if version == SchemaVersion {
		m.logger.Info("Şema güncel, migration gerekmiyor", map[string]interface{}{"version": version})
		return result, nil
	}

	if version > SchemaVersion {
		m.logger.Error("Depo sürümü katalogdan yeni, yıkıcı yeniden oluşturma yapılıyor", map[string]interface{}{
			"stored_version": version,
			"target_version": SchemaVersion,
		})
		return m.rebuild(result)
	}

	exists, err := m.hasTable(TableUsers)
	if err != nil {
		return Result{}, fmt.Errorf("depo durumu kontrol edilemedi: %w", err)
	}

	if !exists {
		if err := m.createFresh(); err != nil {
			return Result{}, err
		}
		result.Created = true
		return result, nil
	}

	for v := version + 1; v <= SchemaVersion; v++ {
		step, ok := m.steps[v]
		if !ok {
			m.logger.Error("Migration adımı tanımlı değil, yıkıcı yeniden oluşturma yapılıyor", map[string]interface{}{
				"missing_step": v,
				"from_version": version,
			})
			return m.rebuild(result)
		}

		if err := m.applyStep(v, step); err != nil {
			m.logger.Error("Migration adımı başarısız, yıkıcı yeniden oluşturma yapılıyor", map[string]interface{}{
				"step":  v,
				"error": err.Error(),
			})
			return m.rebuild(result)
		}
	}

	m.logger.Info("Migrationlar başarıyla uygulandı", map[string]interface{}{
		"from_version": version,
		"to_version":   SchemaVersion,
	})

	return result, nil
}

func (m *Migrator) currentVersion() (int, error) {
	var version int
	if err := m.db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return 0, err
	}
	return version, nil
}

func (m *Migrator) hasTable(name string) (bool, error) {
	var count int
	err := m.db.QueryRow(
		"SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?", name,
	).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (m *Migrator) applyStep(version int, step stepFunc) error {
	m.logger.Info("Migration adımı uygulanıyor", map[string]interface{}{"step": version})

	tx, err := m.db.Begin()
	if err != nil {
		return fmt.Errorf("transaction başlatılamadı: %w", err)
	}

	if err := step(tx); err != nil {
		tx.Rollback()
		return err
	}

	if _, err := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", version)); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("transaction commit edilemedi: %w", err)
	}

	return nil
}

func (m *Migrator) createFresh() error {
	m.logger.Info("Yeni depo oluşturuluyor", map[string]interface{}{"version": SchemaVersion})

	tx, err := m.db.Begin()
	if err != nil {
		return fmt.Errorf("transaction başlatılamadı: %w", err)
	}

	for _, stmt := range createStatements() {
		if _, err := tx.Exec(stmt); err != nil {
			tx.Rollback()
			return fmt.Errorf("tablo oluşturulamadı: %w", err)
		}
	}

	if m.seed {
		if err := seedData(tx); err != nil {
			tx.Rollback()
			return fmt.Errorf("başlangıç verisi eklenemedi: %w", err)
		}
	}

	if _, err := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", SchemaVersion)); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("transaction commit edilemedi: %w", err)
	}

	return nil
}

// rebuild tüm tabloları düşürüp hedef sürümde yeniden oluşturur. Bu
// bilinçli bir veri kaybı yoludur; çağıran ErrDataReset ile uyarılır.
func (m *Migrator) rebuild(result Result) (Result, error) {
	for _, stmt := range dropStatements() {
		if _, err := m.db.Exec(stmt); err != nil {
			return result, fmt.Errorf("tablo düşürülemedi: %w", err)
		}
	}

	if err := m.createFresh(); err != nil {
		return result, err
	}

	result.DataReset = true
	m.logger.Warn("Depo sıfırlanarak yeniden oluşturuldu", map[string]interface{}{
		"from_version": result.FromVersion,
		"to_version":   SchemaVersion,
	})

	return result, domain.ErrDataReset
}

func seedData(tx *sql.Tx) error {
	adminHash, err := password.Hash("admin123")
	if err != nil {
		return err
	}

	_, err = tx.Exec(
		`INSERT INTO users (first_name, last_name, email, password_hash, role, phone)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		"Admin", "User", "admin@eventhive.com", adminHash, domain.UserRoleAdmin, "0000000000",
	)
	if err != nil {
		return err
	}

	samples := []struct {
		title, date, location, description string
	}{
		{
			"WaveFest - Feel The Winter", "12 Dec - 10 PM", "Bashundhara R/A, Dhaka",
			"A music event bringing people together with electric energy.",
		},
		{
			"Tech Summit 2024", "15 Jan - 9 AM", "ICCB, Dhaka",
			"The biggest tech conference in the city.",
		},
	}

	for _, s := range samples {
		_, err := tx.Exec(
			`INSERT INTO events (title, date, location, description, status) VALUES (?, ?, ?, ?, ?)`,
			s.title, s.date, s.location, s.description, domain.EventStatusActive,
		)
		if err != nil {
			return err
		}
	}

	return nil
}

// --- Adımlar ---

func stepAddEventCommerceColumns(tx *sql.Tx) error {
	stmts := []string{
		`ALTER TABLE events ADD COLUMN ticket_price REAL NOT NULL DEFAULT 0`,
		`ALTER TABLE events ADD COLUMN ticket_quantity INTEGER NOT NULL DEFAULT 0`,
		`ALTER TABLE events ADD COLUMN cover_image_path TEXT`,
		`ALTER TABLE events ADD COLUMN gallery_image_paths TEXT`,
		`ALTER TABLE events ADD COLUMN event_type TEXT NOT NULL DEFAULT 'Other'`,
		`ALTER TABLE tickets ADD COLUMN purchase_timestamp INTEGER NOT NULL DEFAULT 0`,
	}
	return execAll(tx, stmts)
}

func stepCreateNotificationsTable(tx *sql.Tx) error {
	return execAll(tx, []string{
		createNotificationsTable,
		createNotificationsUserIndex,
	})
}

func stepAddEventTimestampColumn(tx *sql.Tx) error {
	_, err := tx.Exec(`ALTER TABLE events ADD COLUMN timestamp INTEGER NOT NULL DEFAULT 0`)
	return err
}

// Bilet tablosunun kısıtları yerinde değiştirilemez; gölge tablo ile
// yeniden kurulur: NOT NULL yabancı anahtarlar, benzersiz kod indeksi
// ve anlık görüntü kolonları eklenir, yetim satırlar elenir.
func stepRebuildTicketsTable(tx *sql.Tx) error {
	stmts := []string{
		`CREATE TABLE tickets_shadow (
		    id INTEGER PRIMARY KEY AUTOINCREMENT,
		    user_id INTEGER NOT NULL REFERENCES users (id) ON DELETE CASCADE,
		    event_id INTEGER NOT NULL REFERENCES events (id) ON DELETE CASCADE,
		    unique_code TEXT NOT NULL,
		    purchase_timestamp INTEGER NOT NULL DEFAULT 0,
		    event_title TEXT,
		    event_date TEXT,
		    event_location TEXT
		)`,
		`INSERT INTO tickets_shadow
		    (id, user_id, event_id, unique_code, purchase_timestamp, event_title, event_date, event_location)
		 SELECT t.id, t.user_id, t.event_id, t.unique_code, t.purchase_timestamp, e.title, e.date, e.location
		 FROM tickets t
		 JOIN users u ON u.id = t.user_id
		 JOIN events e ON e.id = t.event_id
		 WHERE t.unique_code IS NOT NULL`,
		`DROP TABLE tickets`,
		`ALTER TABLE tickets_shadow RENAME TO tickets`,
		createTicketsCodeIndex,
		createTicketsUserIndex,
		createTicketsEventIndex,
	}
	return execAll(tx, stmts)
}

func stepAddUserRemoteUID(tx *sql.Tx) error {
	_, err := tx.Exec(`ALTER TABLE users ADD COLUMN remote_uid TEXT`)
	return err
}

func execAll(tx *sql.Tx, stmts []string) error {
	for _, stmt := range stmts {
		if _, err := tx.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
