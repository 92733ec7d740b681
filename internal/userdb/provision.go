package userdb

import (
	"context"
	"fmt"

	bderrors "github.com/FocuswithJustin/bibledb/core/errors"
	"github.com/FocuswithJustin/bibledb/core/sqlite"
	"github.com/FocuswithJustin/bibledb/internal/fileutil"
	"github.com/FocuswithJustin/bibledb/internal/logging"
	"github.com/FocuswithJustin/bibledb/internal/validation"
)

// Result describes a provisioned database.
type Result struct {
	Path       string   // Database file
	CreatedDir bool     // Whether the parent directory had to be created
	Existed    bool     // Whether the file was already present
	Tables     []string // User tables present afterwards, sorted
}

// Provision makes sure a database exists at path with the user tables.
// The parent directory is created first; if that fails nothing is opened.
// Existing tables and rows are not touched.
func Provision(ctx context.Context, path string) (*Result, error) {
	res, err := provision(ctx, path)
	if err != nil {
		logging.ProvisionFailed(path, err)
		return nil, err
	}
	logging.SchemaProvisioned(path, res.Tables, "existed", res.Existed)
	return res, nil
}

func provision(ctx context.Context, path string) (*Result, error) {
	if err := validation.ValidateFilePath(path); err != nil {
		return nil, &bderrors.ConfigError{Setting: "db", Path: path, Err: err}
	}

	res := &Result{Path: path, Existed: fileutil.Exists(path)}
	if res.Existed {
		ft, err := validation.SniffFile(path)
		if err != nil {
			return nil, &bderrors.ConfigError{Setting: "db", Path: path, Err: err}
		}
		if ft != validation.FileTypeSQLite && ft != validation.FileTypeEmpty {
			return nil, bderrors.NewConfig("db", path, fmt.Sprintf("existing file is %s, not a SQLite database", ft))
		}
	}

	created, err := fileutil.EnsureParentDir(path)
	if err != nil {
		return nil, &bderrors.ConfigError{Setting: "db", Path: path, Message: "cannot create parent directory", Err: err}
	}
	res.CreatedDir = created
	if created {
		logging.Info("created directory", "path", path)
	}

	db, err := sqlite.Open(path)
	if err != nil {
		return nil, bderrors.NewStorage("open database", "", err)
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return nil, bderrors.NewStorage("create schema", "", err)
	}

	res.Tables, err = sqlite.TableNames(ctx, db)
	if err != nil {
		return nil, bderrors.NewStorage("list tables", "", err)
	}
	return res, nil
}
