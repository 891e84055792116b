package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"educontrol_backend/internals/features/users/dto"
	"educontrol_backend/internals/features/users/model"
	helper "educontrol_backend/internals/helpers"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

var validate = validator.New()

/* ===================== LIST ===================== */
// GET /api/a/users
func (ctrl *UserController) ListUsers(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var profiles []model.ProfileModel
	q := ctrl.DB.Model(&model.ProfileModel{}).Where("is_active = ?", true)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := q.Order("created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&profiles).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	ids := make([]uuid.UUID, 0, len(profiles))
	for _, p := range profiles {
		ids = append(ids, p.ID)
	}
	roleByUser := map[uuid.UUID]string{}
	if len(ids) > 0 {
		var roles []model.UserRoleModel
		if err := ctrl.DB.Where("user_id IN ?", ids).Find(&roles).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		for _, r := range roles {
			roleByUser[r.UserID] = r.Role
		}
	}

	out := make([]dto.UserResponse, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, dto.FromProfileModel(p, roleByUser[p.ID]))
	}

	return helper.JsonList(c, "users fetched", out, helper.BuildPagination(total, paging, len(out)))
}

/* ===================== CREATE ===================== */
// POST /api/a/users
func (ctrl *UserController) CreateUser(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	profile := model.ProfileModel{
		Email:            req.Email,
		FullName:         req.FullName,
		Phone:            req.Phone,
		PasswordHash:     string(hash),
		EnrollmentNumber: req.EnrollmentNumber,
		IsActive:         true,
	}
	if req.BranchID != nil {
		id, err := uuid.Parse(*req.BranchID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid branch ID")
		}
		profile.BranchID = &id
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&profile).Error; err != nil {
			return err
		}
		role := model.UserRoleModel{UserID: profile.ID, Role: req.Role}
		return tx.Create(&role).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	return helper.JsonCreated(c, "user created", dto.FromProfileModel(profile, req.Role))
}

/* ===================== CHANGE ROLE ===================== */
// PATCH /api/a/users/:id/role
func (ctrl *UserController) ChangeRole(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user ID")
	}

	var req dto.ChangeRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&model.UserRoleModel{}).Error; err != nil {
			return err
		}
		return tx.Create(&model.UserRoleModel{UserID: userID, Role: req.Role}).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to change role")
	}

	return helper.JsonUpdated(c, "role changed", fiber.Map{"user_id": userID, "role": req.Role})
}

/* ===================== DEACTIVATE ===================== */
// DELETE /api/a/users/:id
func (ctrl *UserController) DeactivateUser(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user ID")
	}

	res := ctrl.DB.Model(&model.ProfileModel{}).
		Where("id = ?", userID).
		Update("is_active", false)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	return helper.JsonDeleted(c, "user deactivated", fiber.Map{"user_id": userID})
}

/* ===================== DETAIL ===================== */
// GET /api/a/users/:id
func (ctrl *UserController) GetUser(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user ID")
	}

	var profile model.ProfileModel
	if err := ctrl.DB.First(&profile, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var role model.UserRoleModel
	_ = ctrl.DB.Where("user_id = ?", userID).First(&role).Error

	return helper.JsonOK(c, "user fetched", dto.FromProfileModel(profile, role.Role))
}
