package services

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"petitions-backend/internal/logger"
	"petitions-backend/internal/models"
	"petitions-backend/internal/repositories"
)

// Error variables
var (
	ErrAlreadySigned  = errors.New("petition already signed by this user")
	ErrNotSigned      = errors.New("petition not signed by this user")
	ErrOwnPetition    = errors.New("authors cannot sign their own petition")
	ErrPetitionClosed = errors.New("petition is closed")
)

// SignatureReader defines read-only operations for signatures.
type SignatureReader interface {
	ListByPetition(ctx context.Context, petitionID int64) ([]models.SignatureDB, error)
	Exists(ctx context.Context, signatoryID, petitionID int64) (bool, error)
}

// SignatureWriter defines write operations for signatures.
type SignatureWriter interface {
	Save(ctx context.Context, signatoryID, petitionID int64, signedDate time.Time) error
	Delete(ctx context.Context, signatoryID, petitionID int64) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// SignatureEvent is published to Kafka when a petition is signed or
// unsigned.
type SignatureEvent struct {
	EventID     string `json:"event_id"`
	Type        string `json:"type"` // "signed" or "unsigned"
	PetitionID  int64  `json:"petition_id"`
	SignatoryID int64  `json:"signatory_id"`
	Timestamp   int64  `json:"timestamp"`
}

// SignatureService handles signing and unsigning petitions.
type SignatureService struct {
	petitions   PetitionReader
	reader      SignatureReader
	writer      SignatureWriter
	kafkaWriter KafkaWriter
}

// NewSignatureService creates a new SignatureService. kafkaWriter may be
// nil, in which case events are not published.
func NewSignatureService(petitions PetitionReader, reader SignatureReader, writer SignatureWriter, kafkaWriter KafkaWriter) *SignatureService {
	return &SignatureService{
		petitions:   petitions,
		reader:      reader,
		writer:      writer,
		kafkaWriter: kafkaWriter,
	}
}

// List returns the signatures of a petition, oldest first.
func (svc *SignatureService) List(ctx context.Context, petitionID int64) ([]models.SignatureDB, error) {
	petition, err := svc.petitions.GetByID(ctx, petitionID)
	if err != nil {
		logger.Log.Errorw("failed to get petition", "err", err)
		return nil, err
	}
	if petition == nil {
		return nil, ErrPetitionNotFound
	}

	signatures, err := svc.reader.ListByPetition(ctx, petitionID)
	if err != nil {
		logger.Log.Errorw("failed to list signatures", "err", err)
		return nil, err
	}
	return signatures, nil
}

// Sign records userID's signature on an open petition. Authors cannot sign
// their own petition and a user can sign a petition at most once.
func (svc *SignatureService) Sign(ctx context.Context, userID, petitionID int64) error {
	petition, err := svc.petitions.GetByID(ctx, petitionID)
	if err != nil {
		logger.Log.Errorw("failed to get petition", "err", err)
		return err
	}
	if petition == nil {
		return ErrPetitionNotFound
	}
	if petition.AuthorID == userID {
		return ErrOwnPetition
	}
	if !petition.Open(time.Now()) {
		return ErrPetitionClosed
	}

	signed, err := svc.reader.Exists(ctx, userID, petitionID)
	if err != nil {
		logger.Log.Errorw("failed to check signature", "err", err)
		return err
	}
	if signed {
		return ErrAlreadySigned
	}

	err = svc.writer.Save(ctx, userID, petitionID, time.Now())
	if errors.Is(err, repositories.ErrDuplicate) {
		// Lost the race to a concurrent signature by the same user.
		return ErrAlreadySigned
	}
	if err != nil {
		logger.Log.Errorw("failed to save signature", "err", err)
		return err
	}

	svc.publishEvent(ctx, "signed", petitionID, userID)
	return nil
}

// Unsign removes userID's signature from an open petition.
func (svc *SignatureService) Unsign(ctx context.Context, userID, petitionID int64) error {
	petition, err := svc.petitions.GetByID(ctx, petitionID)
	if err != nil {
		logger.Log.Errorw("failed to get petition", "err", err)
		return err
	}
	if petition == nil {
		return ErrPetitionNotFound
	}
	if petition.AuthorID == userID {
		return ErrOwnPetition
	}
	if !petition.Open(time.Now()) {
		return ErrPetitionClosed
	}

	signed, err := svc.reader.Exists(ctx, userID, petitionID)
	if err != nil {
		logger.Log.Errorw("failed to check signature", "err", err)
		return err
	}
	if !signed {
		return ErrNotSigned
	}

	if err := svc.writer.Delete(ctx, userID, petitionID); err != nil {
		logger.Log.Errorw("failed to delete signature", "err", err)
		return err
	}

	svc.publishEvent(ctx, "unsigned", petitionID, userID)
	return nil
}

// publishEvent publishes a signature event to Kafka. Publishing is best
// effort: failures are logged and do not fail the request.
func (svc *SignatureService) publishEvent(ctx context.Context, eventType string, petitionID, signatoryID int64) {
	if svc.kafkaWriter == nil {
		return
	}

	event := SignatureEvent{
		EventID:     uuid.NewString(),
		Type:        eventType,
		PetitionID:  petitionID,
		SignatoryID: signatoryID,
		Timestamp:   time.Now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal signature event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(petitionID, 10)),
		Value: data,
	}

	if err := svc.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish signature event", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("signature event published", "event_id", event.EventID, "type", eventType, "petition_id", petitionID)
	}
}
