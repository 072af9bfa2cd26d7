package database

// Şema kataloğu: tablo tanımları, indeksler ve geçerli şema sürümü.
// Sürüm numarası PRAGMA user_version içinde saklanır.

const SchemaVersion = 6

const (
	TableUsers         = "users"
	TableEvents        = "events"
	TableTickets       = "tickets"
	TableNotifications = "notifications"
)

const createUsersTable = `
CREATE TABLE users (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    first_name TEXT NOT NULL,
    last_name TEXT,
    email TEXT NOT NULL COLLATE NOCASE,
    password_hash TEXT,
    role TEXT NOT NULL DEFAULT 'Standard',
    phone TEXT,
    remote_uid TEXT
)`

const createUsersEmailIndex = `CREATE UNIQUE INDEX idx_users_email ON users (email)`

const createEventsTable = `
CREATE TABLE events (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    title TEXT NOT NULL,
    date TEXT,
    timestamp INTEGER NOT NULL DEFAULT 0,
    location TEXT,
    description TEXT,
    status TEXT NOT NULL DEFAULT 'Active',
    ticket_price REAL NOT NULL DEFAULT 0,
    ticket_quantity INTEGER NOT NULL DEFAULT 0,
    cover_image_path TEXT,
    gallery_image_paths TEXT,
    event_type TEXT NOT NULL DEFAULT 'Other'
)`

const createTicketsTable = `
CREATE TABLE tickets (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id INTEGER NOT NULL REFERENCES users (id) ON DELETE CASCADE,
    event_id INTEGER NOT NULL REFERENCES events (id) ON DELETE CASCADE,
    unique_code TEXT NOT NULL,
    purchase_timestamp INTEGER NOT NULL DEFAULT 0,
    event_title TEXT,
    event_date TEXT,
    event_location TEXT
)`

const (
	createTicketsCodeIndex  = `CREATE UNIQUE INDEX idx_tickets_code ON tickets (unique_code)`
	createTicketsUserIndex  = `CREATE INDEX idx_tickets_user ON tickets (user_id)`
	createTicketsEventIndex = `CREATE INDEX idx_tickets_event ON tickets (event_id)`
)

const createNotificationsTable = `
CREATE TABLE notifications (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    title TEXT NOT NULL,
    message TEXT,
    timestamp INTEGER NOT NULL DEFAULT 0,
    is_read INTEGER NOT NULL DEFAULT 0,
    user_id INTEGER NOT NULL REFERENCES users (id) ON DELETE CASCADE,
    related_event_id INTEGER NOT NULL DEFAULT 0
)`

const createNotificationsUserIndex = `CREATE INDEX idx_notifications_user ON notifications (user_id)`

// Geçerli sürümdeki tam şema, sıfırdan oluşturma ve yıkıcı yeniden
// oluşturma tarafından kullanılır.
func createStatements() []string {
	return []string{
		createUsersTable,
		createUsersEmailIndex,
		createEventsTable,
		createTicketsTable,
		createTicketsCodeIndex,
		createTicketsUserIndex,
		createTicketsEventIndex,
		createNotificationsTable,
		createNotificationsUserIndex,
	}
}

// Önce alt tablolar, yabancı anahtarlar açıkken üst tablo silinemez.
func dropStatements() []string {
	return []string{
		`DROP TABLE IF EXISTS tickets`,
		`DROP TABLE IF EXISTS notifications`,
		`DROP TABLE IF EXISTS users`,
		`DROP TABLE IF EXISTS events`,
	}
}
