package auth

import "sync"

// Session, girişli kullanıcının bellek içi kopyasıdır.
type Session struct {
	UID       string
	Email     string
	FirstName string
	LastName  string
	Role      string
	Phone     string
}

// SessionManager eşzamanlı erişime karşı korunur; okuma yazmadan çok
// daha sık olduğundan RWMutex kullanılır.
type SessionManager struct {
	mutex   sync.RWMutex
	current *Session
}

func NewSessionManager() *SessionManager {
	return &SessionManager{}
}

func (m *SessionManager) SetSession(session Session) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.current = &session
}

// Current kopyasını döner; çağıran oturumu yerinde değiştiremez.
func (m *SessionManager) Current() (Session, bool) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	if m.current == nil {
		return Session{}, false
	}
	return *m.current, true
}

func (m *SessionManager) Clear() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.current = nil
}

func (m *SessionManager) IsLoggedIn() bool {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.current != nil
}
