package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

// bindJSON binds the request body and, on any violated rule, writes the
// aggregated field-level messages before the handler body runs.
func bindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "validation failed",
			"errors":  validationMessages(err),
		})
		return false
	}
	return true
}

func validationMessages(err error) []string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			label := fieldLabel(fe.Field())
			switch fe.Tag() {
			case "required":
				msgs = append(msgs, fmt.Sprintf("%s field is required", label))
			case "email":
				msgs = append(msgs, fmt.Sprintf("%s must be a email in format.", label))
			case "oneof":
				msgs = append(msgs, fmt.Sprintf("%s must be one of %s.", label, fe.Param()))
			default:
				msgs = append(msgs, fmt.Sprintf("%s is invalid.", label))
			}
		}
		return msgs
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return []string{fmt.Sprintf("%s must be a %s.", fieldLabel(typeErr.Field), kindLabel(typeErr.Type.Kind()))}
	}

	return []string{err.Error()}
}

// fieldLabel turns a field name into the label used in messages:
// "phoneNumber" -> "Phone Number".
func fieldLabel(name string) string {
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	var b strings.Builder
	for i, r := range name {
		if i == 0 {
			b.WriteRune(unicode.ToUpper(r))
			continue
		}
		if unicode.IsUpper(r) {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func kindLabel(k reflect.Kind) string {
	switch k {
	case reflect.Bool:
		return "Boolean"
	case reflect.String:
		return "String"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "Integer"
	default:
		return k.String()
	}
}

// serverError logs the failure and emits the uniform 500 envelope. Unique
// phone-number collisions come back as a 400 field message instead of
// leaking a storage error.
func serverError(c *gin.Context, context string, err error) {
	logrus.WithError(err).Error(context)

	var pgErr *pq.Error
	if (errors.As(err, &pgErr) && pgErr.Code == "23505") ||
		strings.Contains(err.Error(), "duplicate key") {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Phone Number already in use.",
		})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"error":   err.Error(),
		"message": "server error",
	})
}
