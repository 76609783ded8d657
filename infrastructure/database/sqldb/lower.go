package sqldb

import (
	"database/sql/driver"
	"strings"

	"modernc.org/sqlite"
)

// o LOWER nativo do sqlite só converte ASCII; esta função usa o mesmo case folding do Go
const sqliteUnicodeLower = "unicode_lower"

func init() {
	sqlite.MustRegisterDeterministicScalarFunction(sqliteUnicodeLower, 1, func(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
		switch v := args[0].(type) {
		case nil:
			return nil, nil
		case string:
			return strings.ToLower(v), nil
		case []byte:
			return strings.ToLower(string(v)), nil
		default:
			return v, nil
		}
	})
}

// LowerFunc retorna a função SQL de minúsculas com suporte a Unicode.
// Vazio quando o dialeto não oferece uma (libsql remoto); nesse caso o filtro é aplicado em Go.
func (d Dialect) LowerFunc() string {
	switch d {
	case DialectPostgres:
		return "LOWER"
	case DialectSQLite:
		return sqliteUnicodeLower
	}
	return ""
}
