package msgstore

import (
	"context"
	"database/sql"

	"github.com/go-sql-driver/mysql"
	"github.com/golang/glog"

	"github.com/mqy/storyview/view"
)

const (
	getDirectRepliesSQL = "SELECT message_id, author_id, body, mentions, sent_at, deleted " +
		"FROM messages " +
		"WHERE conversation_id = ? AND parent_story_id = ? " +
		"ORDER BY sent_at ASC, message_id ASC LIMIT ?"
	// Group threads only surface replies from current members.
	getGroupRepliesSQL = "SELECT m.message_id, m.author_id, m.body, m.mentions, m.sent_at, m.deleted " +
		"FROM messages AS m, group_members AS g " +
		"WHERE m.conversation_id = ? AND m.parent_story_id = ? " +
		"AND g.conversation_id = m.conversation_id AND g.member_id = m.author_id " +
		"ORDER BY m.sent_at ASC, m.message_id ASC LIMIT ?"
	insertStoryReadSQL   = "INSERT INTO story_reads (author_id, conversation_id, story_id, read_at) VALUES (?,?,?,?)"
	clearReplyContextSQL = "UPDATE messages SET reply_context = NULL WHERE message_id = ?"
	cleanStoryReadsSQL   = "DELETE FROM story_reads WHERE read_at <= ?"
)

// messageStore implements `IMessageStore` over mysql.
type messageStore struct {
	*sql.DB
}

func NewMessageStore(db *sql.DB) *messageStore {
	return &messageStore{db}
}

func (s *messageStore) withTx(ctx context.Context, exec func(ctx context.Context, tx *sql.Tx) error, opts ...*sql.TxOptions) error {
	var txOpts *sql.TxOptions
	if len(opts) == 0 {
		txOpts = &sql.TxOptions{
			Isolation: sql.LevelRepeatableRead,
			ReadOnly:  false,
		}
	} else {
		txOpts = opts[0]
	}
	tx, err := s.BeginTx(ctx, txOpts)
	if err != nil {
		return err
	}

	if err := exec(ctx, tx); err != nil {
		if err2 := tx.Rollback(); err2 != nil {
			glog.Errorf("failed to rollback: %v", err2)
		}
		return err
	}

	return tx.Commit()
}

func (s *messageStore) FetchOlderThreadMessages(ctx context.Context, conversationID string, q *ThreadQuery) ([]*view.ReplyMessage, error) {
	query := getDirectRepliesSQL
	if q.IsGroup {
		query = getGroupRepliesSQL
	}

	var replies []*view.ReplyMessage
	if err := s.withTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx, query, conversationID, q.StoryID, q.Limit)
		if err != nil {
			glog.Errorf("fetch thread query err: %v", err)
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var r view.ReplyMessage
			var mentions sql.NullString
			if err := rows.Scan(&r.MessageID, &r.AuthorID, &r.Body, &mentions, &r.Timestamp, &r.Deleted); err != nil {
				glog.Errorf("fetch thread scan err: %v", err)
				return err
			}
			r.ConversationID = conversationID
			r.ParentStoryID = q.StoryID
			if mentions.Valid {
				m, err := DecodeMentions(mentions.String)
				if err != nil {
					glog.Errorf("fetch thread: bad mentions column, message: %s, err: %v", r.MessageID, err)
				} else {
					r.Mentions = m
				}
			}
			replies = append(replies, &r)
		}
		return rows.Err()
	}, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}); err != nil {
		return nil, err
	}

	return replies, nil
}

func (s *messageStore) RecordStoryRead(ctx context.Context, r *StoryRead) error {
	return s.withTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, insertStoryReadSQL, r.AuthorID, r.ConversationID, r.StoryID, r.ReadAt); err != nil {
			// Read events are keyed (author, conversation, story, read_at);
			// a duplicate means this exact event is already recorded.
			if s.IsDupKeyError(err) {
				glog.V(5).Infof("story read already recorded, story: %s", r.StoryID)
				return nil
			}
			glog.Errorf("insert story read err: %v", err)
			return err
		}
		return nil
	})
}

func (s *messageStore) ClearReplyContext(ctx context.Context, messageID string) error {
	return s.withTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, clearReplyContextSQL, messageID); err != nil {
			glog.Errorf("clear reply context exec err: %v", err)
			return err
		}
		return nil
	})
}

func (s *messageStore) DeleteOutdatedReads(ctx context.Context, ttlDays int32) (int32, error) {
	lteReadAt := GetDayBefore(ttlDays).UnixMilli()
	var numDeleted int32

	if err := s.withTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, cleanStoryReadsSQL, lteReadAt)
		if err != nil {
			return err
		}

		n, err := res.RowsAffected()
		if err != nil {
			return err
		}

		numDeleted = int32(n)
		return nil
	}); err != nil {
		return 0, err
	}
	return numDeleted, nil
}

func (s *messageStore) IsDupKeyError(err error) bool {
	if val, ok := err.(*mysql.MySQLError); ok {
		return val.Number == 1062
	}
	return false
}
