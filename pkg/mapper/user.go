package mapper

import (
	"github.com/amirasaad/ebanking/pkg/domain/user"
	"github.com/amirasaad/ebanking/pkg/dto"
)

// UserToDomain maps a record to a User. Empty names fail with user.ErrUserName.
func UserToDomain(rec dto.UserRecord) (*user.User, error) {
	return user.New(rec.ID, rec.FirstName, rec.LastName)
}

// UserToRecord maps a User to its store record, re-checking the names.
// The record carries the trimmed fields.
func UserToRecord(u *user.User) (dto.UserRecord, error) {
	valid, err := user.New(u.ID, u.FirstName, u.LastName)
	if err != nil {
		return dto.UserRecord{}, err
	}
	return dto.UserRecord{ID: valid.ID, FirstName: valid.FirstName, LastName: valid.LastName}, nil
}

// UsersToRecords maps users in order, stopping at the first invalid one.
func UsersToRecords(users []*user.User) ([]dto.UserRecord, error) {
	recs := make([]dto.UserRecord, 0, len(users))
	for _, u := range users {
		rec, err := UserToRecord(u)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, nil
}
