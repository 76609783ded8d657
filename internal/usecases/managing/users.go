package managing

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/influence-hub-api/infrastructure/repository"
	"github.com/vfg2006/influence-hub-api/internal/domain"
	"github.com/vfg2006/influence-hub-api/pkg/apiErrors"
	"golang.org/x/crypto/bcrypt"
)

func (s *Service) CreateUser(ctx context.Context, request *domain.CreateUserRequest) (*domain.User, error) {
	if err := s.validate.Struct(request); err != nil {
		return nil, err
	}

	if err := s.checkUserCollision(ctx, 0, &request.Username, request.Email); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		logrus.WithError(err).Error("Erro ao gerar hash da senha")
		return nil, &ManagingError{Err: ErrStorage, Cause: err, Code: apiErrors.ErrInternalServer, Details: "falha ao processar senha"}
	}

	role := request.Role
	if role == "" {
		role = domain.DefaultUserRole
	}

	user, err := s.userRepository.CreateUser(ctx, &domain.User{
		Username:        request.Username,
		Email:           request.Email,
		PasswordHash:    string(hash),
		Role:            role,
		FirstName:       request.FirstName,
		LastName:        request.LastName,
		ProfileImageURL: request.ProfileImageURL,
	})
	if err != nil {
		if errors.Is(err, repository.ErrUniqueViolation) {
			return nil, newValidationError(apiErrors.ErrAlreadyExists, "username ou email já cadastrado")
		}
		logrus.WithError(err).WithField("username", request.Username).Error("Erro ao criar usuário")
		return nil, newStorageError(err, "falha ao criar usuário")
	}

	logrus.WithField("user_id", user.ID).Info("Usuário criado")

	return user, nil
}

// GetUser retorna nil sem erro quando o usuário não existe
func (s *Service) GetUser(ctx context.Context, userID int) (*domain.User, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		logrus.WithError(err).WithField("user_id", userID).Error("Erro ao buscar usuário")
		return nil, newStorageError(err, "falha ao buscar usuário")
	}

	return user, nil
}

func (s *Service) UpdateUser(ctx context.Context, userID int, request *domain.UpdateUserRequest) (*domain.User, error) {
	if err := s.validate.Struct(request); err != nil {
		return nil, err
	}

	existing, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return nil, newStorageError(err, "falha ao buscar usuário")
	}
	if existing == nil {
		return nil, newNotFoundError(apiErrors.ErrUserNotFound, userID, fmt.Sprintf("usuário %d não encontrado", userID))
	}

	if err := s.checkUserCollision(ctx, userID, request.Username, request.Email); err != nil {
		return nil, err
	}

	patch := *request
	patch.Password = nil
	if request.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*request.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, &ManagingError{Err: ErrStorage, Cause: err, Code: apiErrors.ErrInternalServer, Details: "falha ao processar senha"}
		}
		hashed := string(hash)
		patch.PasswordHash = &hashed
	}

	user, err := s.userRepository.UpdateUser(ctx, userID, &patch)
	if err != nil {
		if errors.Is(err, repository.ErrUniqueViolation) {
			return nil, newValidationError(apiErrors.ErrAlreadyExists, "username ou email já cadastrado")
		}
		logrus.WithError(err).WithField("user_id", userID).Error("Erro ao atualizar usuário")
		return nil, newStorageError(err, "falha ao atualizar usuário")
	}
	if user == nil {
		return nil, newNotFoundError(apiErrors.ErrUserNotFound, userID, fmt.Sprintf("usuário %d não encontrado", userID))
	}

	return user, nil
}

// checkUserCollision verifica username e email contra outros usuários; selfID é ignorado
func (s *Service) checkUserCollision(ctx context.Context, selfID int, username, email *string) error {
	if username != nil {
		other, err := s.userRepository.GetUserByUsername(ctx, *username)
		if err != nil {
			return newStorageError(err, "falha ao verificar username")
		}
		if other != nil && other.ID != selfID {
			return newValidationError(apiErrors.ErrAlreadyExists, fmt.Sprintf("username %q já cadastrado", *username))
		}
	}

	if email != nil {
		other, err := s.userRepository.GetUserByEmail(ctx, *email)
		if err != nil {
			return newStorageError(err, "falha ao verificar email")
		}
		if other != nil && other.ID != selfID {
			return newValidationError(apiErrors.ErrAlreadyExists, fmt.Sprintf("email %q já cadastrado", *email))
		}
	}

	return nil
}
