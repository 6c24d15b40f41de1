package handler

import (
	"context"
	"strconv"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"AreejShop/internal/middleware"
	"AreejShop/internal/model"
	"AreejShop/internal/model/dto"
	"AreejShop/internal/service"
	pkgerrors "AreejShop/pkg/errors"
	"AreejShop/pkg/response"
	"AreejShop/pkg/token"
)

// ListAttendance 考勤记录列表，按日期/员工筛选
// GET /api/attendance
func ListAttendance(ctx context.Context, c *app.RequestContext) {
	var query dto.AttendanceListQuery
	if err := c.BindQuery(&query); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	records, err := service.Attendance().ListAttendance(ctx, query)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.Success(ctx, c, records)
}

// CheckIn 签到。manual 方式仅管理员可用
// POST /api/attendance/check-in
func CheckIn(ctx context.Context, c *app.RequestContext) {
	var req dto.CheckInRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	if req.Method == string(model.AttendanceMethodManual) {
		identity, ok := middleware.GetIdentity(c)
		if !ok || identity.Role != token.RoleAdmin {
			response.Error(ctx, c, pkgerrors.PageForbidden)
			return
		}
	}

	record, err := service.Attendance().RecordCheckIn(ctx, req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.Created(ctx, c, record)
}

// GetDailyQR 当天的考勤码值（JSON）
// GET /api/attendance/qr
func GetDailyQR(ctx context.Context, c *app.RequestContext) {
	data, err := service.Attendance().DailyQR(ctx)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.Success(ctx, c, data)
}

// GetDailyQRImage 当天的考勤码图片（PNG），后台打印用
// GET /api/attendance/qr/image
func GetDailyQRImage(ctx context.Context, c *app.RequestContext) {
	size, _ := strconv.Atoi(c.Query("size"))

	png, err := service.Attendance().DailyQRImage(ctx, size)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	c.Data(consts.StatusOK, "image/png", png)
}
