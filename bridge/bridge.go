package bridge

import "fmt"

// Driver is the implementation side of the bridge.
type Driver interface {
	Name() string
	Connect() string
	Disconnect() string
	Query(q string) string
}

// MySQLDriver is one concrete implementation.
type MySQLDriver struct{}

func (MySQLDriver) Name() string       { return "MySQL" }
func (MySQLDriver) Connect() string    { return "Connecting to MySQL database..." }
func (MySQLDriver) Disconnect() string { return "Disconnecting from MySQL database..." }

func (MySQLDriver) Query(q string) string {
	return fmt.Sprintf("Executing MySQL query: %s", q)
}

// PostgresDriver is another concrete implementation.
type PostgresDriver struct{}

func (PostgresDriver) Name() string       { return "PostgreSQL" }
func (PostgresDriver) Connect() string    { return "Connecting to PostgreSQL database..." }
func (PostgresDriver) Disconnect() string { return "Disconnecting from PostgreSQL database..." }

func (PostgresDriver) Query(q string) string {
	return fmt.Sprintf("Executing PostgreSQL query: %s", q)
}

// AppDB is the abstraction side: what application code talks to. It holds a
// Driver and never knows which backend answers.
type AppDB struct {
	driver Driver
}

// NewAppDB creates the abstraction over the given driver.
func NewAppDB(driver Driver) *AppDB {
	return &AppDB{driver: driver}
}

// SwitchDriver swaps the implementation at runtime.
func (db *AppDB) SwitchDriver(driver Driver) {
	db.driver = driver
}

// DriverName reports which implementation currently backs the abstraction.
func (db *AppDB) DriverName() string { return db.driver.Name() }

// FetchUsers opens a connection, runs the canonical query, and disconnects,
// returning the session transcript.
func (db *AppDB) FetchUsers() []string {
	return []string{
		db.driver.Connect(),
		db.driver.Query("SELECT * FROM users"),
		db.driver.Disconnect(),
	}
}
