package usecase

import (
	"time"

	"github.com/golang-jwt/jwt"
	"golang.org/x/xerrors"

	"github.com/mintfolio/settleapi/base/ctx"
	"github.com/mintfolio/settleapi/domain"
	"github.com/mintfolio/settleapi/domain/ledger"
)

type impl struct {
	jwtSecret []byte
	ledger    ledger.UseCase
}

func New(jwtSecret string, ledger ledger.UseCase) domain.AuthUsecase {
	return &impl{
		jwtSecret: []byte(jwtSecret),
		ledger:    ledger,
	}
}

func (im *impl) SignToken(ctx ctx.Ctx, address domain.Address) (string, error) {
	_, err := im.ledger.Get(ctx, address)

	if err != nil && err != domain.ErrNotFound {
		return "", err
	}

	// first sign-in opens an empty ledger account
	if err == domain.ErrNotFound {
		if err := im.ledger.Create(ctx, &ledger.Account{Address: address}); err != nil {
			return "", err
		}
	}

	claims := domain.JwtCustomClaims{
		Address: string(address),
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(24 * time.Hour).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	if ss, err := token.SignedString(im.jwtSecret); err != nil {
		ctx.WithField("err", err).Error("token.SignedString failed")
		return "", err
	} else {
		return ss, nil
	}
}

func (im *impl) ParseToken(ctx ctx.Ctx, str string) (string, error) {
	token, err := jwt.ParseWithClaims(str, &domain.JwtCustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, xerrors.Errorf("Unexpected signing method: %v", token.Header["alg"])
		}
		return im.jwtSecret, nil
	})

	// a malformed token string yields a nil token, not just an error
	if err != nil || token == nil {
		return "", err
	}

	if claims, ok := token.Claims.(*domain.JwtCustomClaims); ok && token.Valid {
		return claims.Address, nil
	}

	return "", err
}
