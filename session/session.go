package session

import (
	"encoding/binary"
	"encoding/json"
	"fmt"

	"github.com/golang/glog"
	"go.etcd.io/bbolt"
)

var (
	bucketConversations = []byte("conversations")
	bucketDevice        = []byte("device")
	bucketViewedMarks   = []byte("viewed_marks")

	keyPrimary = []byte("primary")
)

// Conversation is one registry entry: a direct chat, a group, or a
// distribution list target.
type Conversation struct {
	ID         string   `json:"id"`
	Title      string   `json:"title,omitempty"`
	IsGroup    bool     `json:"is_group,omitempty"`
	Recipients []string `json:"recipients,omitempty"`
}

type ISession interface {
	// GetConversation returns nil (not an error) when the id is unknown.
	GetConversation(id string) (*Conversation, error)

	// IsPrimaryDevice reports whether this device is the account primary.
	IsPrimaryDevice() (bool, error)

	// MarkViewed records the device-local viewed mark for a story.
	MarkViewed(storyID string, readAt int64) error
}

// Session is the bbolt-backed device registry.
type Session struct {
	db *bbolt.DB
}

func Open(path string) (*Session, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("open session db `%s`: %v", path, err)
	}

	if err := db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketConversations, bucketDevice, bucketViewedMarks} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Session{db: db}, nil
}

func (s *Session) Close() error {
	return s.db.Close()
}

func (s *Session) GetConversation(id string) (*Conversation, error) {
	var conv *Conversation
	if err := s.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket(bucketConversations).Get([]byte(id))
		if v == nil {
			return nil
		}
		var c Conversation
		if err := json.Unmarshal(v, &c); err != nil {
			glog.Errorf("session: bad conversation record, id: %s, err: %v", id, err)
			return err
		}
		conv = &c
		return nil
	}); err != nil {
		return nil, err
	}
	return conv, nil
}

func (s *Session) PutConversation(c *Conversation) error {
	b, err := json.Marshal(c)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketConversations).Put([]byte(c.ID), b)
	})
}

func (s *Session) IsPrimaryDevice() (bool, error) {
	var primary bool
	if err := s.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket(bucketDevice).Get(keyPrimary)
		primary = len(v) == 1 && v[0] == 1
		return nil
	}); err != nil {
		return false, err
	}
	return primary, nil
}

func (s *Session) SetPrimaryDevice(primary bool) error {
	v := []byte{0}
	if primary {
		v[0] = 1
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketDevice).Put(keyPrimary, v)
	})
}

func (s *Session) MarkViewed(storyID string, readAt int64) error {
	var v [8]byte
	binary.BigEndian.PutUint64(v[:], uint64(readAt))
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketViewedMarks).Put([]byte(storyID), v[:])
	})
}

// ViewedAt returns the local viewed mark, 0 if none.
func (s *Session) ViewedAt(storyID string) (int64, error) {
	var readAt int64
	if err := s.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket(bucketViewedMarks).Get([]byte(storyID))
		if len(v) == 8 {
			readAt = int64(binary.BigEndian.Uint64(v))
		}
		return nil
	}); err != nil {
		return 0, err
	}
	return readAt, nil
}
