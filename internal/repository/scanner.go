package repository

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// ScanItem scans key, value and updated_at columns into an Item
func ScanItem(scanner Scanner) (*Item, error) {
	item := &Item{}
	var updatedAt string

	if err := scanner.Scan(&item.Key, &item.Value, &updatedAt); err != nil {
		return nil, err
	}

	// rows written by other tools may carry no timestamp
	if t, err := ParseTimeFromDB(updatedAt); err == nil {
		item.UpdatedAt = t
	}

	return item, nil
}
