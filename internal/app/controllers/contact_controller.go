package controllers

import (
	"errors"
	"net/http"

	"civicdesk-http-service/internal/domain/services"
	"civicdesk-http-service/internal/domain/services/container"

	"github.com/gin-gonic/gin"
)

// InterfaceContactController 定义联系与订阅控制器接口
type InterfaceContactController interface {
	ShowPage()
	Subscribe()
	SaveMessage()
}

// ContactController 联系、订阅与留言控制器
type ContactController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewContactController 创建一个新的联系控制器
func NewContactController(ctx *gin.Context, container *container.ServiceContainer) *ContactController {
	return &ContactController{
		Ctx:       ctx,
		Container: container,
	}
}

// ContactMessageForm 居民留言的表单字段
type ContactMessageForm struct {
	FullName string `form:"full_name"`
	Phone    string `form:"phone"`
	Topic    string `form:"topic"`
	Message  string `form:"message"`
}

// HandleContactFunc 返回一个处理联系请求的Gin处理函数
func HandleContactFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewContactController(ctx, container)

		switch method {
		case "showPage":
			controller.ShowPage()
		case "subscribe":
			controller.Subscribe()
		case "saveMessage":
			controller.SaveMessage()
		default:
			NewPageController(ctx, container).NotFound()
		}
	}
}

// 1 ShowPage 渲染联系与订阅页面
func (c *ContactController) ShowPage() {
	c.Ctx.HTML(http.StatusOK, "contact.html", baseData(c.Container, "Contact"))
}

// 2 Subscribe 登记订阅邮箱，重复订阅同样返回成功
// @Summary      订阅官方更新
// @Description  登记订阅邮箱，重复订阅静默成功
// @Tags         Contact
// @Accept       x-www-form-urlencoded
// @Produce      html
// @Param        email formData string true "订阅邮箱"
// @Success      200  {string}  string
// @Failure      400  {string}  string
// @Router       /subscribe [post]
func (c *ContactController) Subscribe() {
	email := c.Ctx.PostForm("email")

	subscriberService := c.Container.GetService("subscriber").(services.InterfaceSubscriberService)
	if _, err := subscriberService.Subscribe(email); err != nil {
		if errors.Is(err, services.ErrInvalidEmail) {
			c.renderPage(http.StatusBadRequest, "", err.Error())
			return
		}
		renderServerError(c.Ctx, c.Container, err)
		return
	}

	statsService := c.Container.GetService("stats").(services.InterfaceStatsService)
	statsService.InvalidateCache()

	c.renderPage(http.StatusOK, "Subscription received successfully.", "")
}

// 3 SaveMessage 保存居民直接留言
// @Summary      发送直接留言
// @Description  校验必填字段后保存居民留言
// @Tags         Contact
// @Accept       x-www-form-urlencoded
// @Produce      html
// @Param        full_name formData string true "姓名"
// @Param        topic formData string true "主题"
// @Param        message formData string true "留言内容"
// @Success      200  {string}  string
// @Failure      400  {string}  string
// @Router       /contact-message [post]
func (c *ContactController) SaveMessage() {
	var form ContactMessageForm
	if err := c.Ctx.ShouldBind(&form); err != nil {
		c.renderPage(http.StatusBadRequest, "", services.ErrContactValidation.Error())
		return
	}

	subscriberService := c.Container.GetService("subscriber").(services.InterfaceSubscriberService)
	_, err := subscriberService.SaveContactMessage(&services.ContactMessageRequest{
		FullName: form.FullName,
		Phone:    form.Phone,
		Topic:    form.Topic,
		Message:  form.Message,
	})
	if err != nil {
		if errors.Is(err, services.ErrContactValidation) {
			c.renderPage(http.StatusBadRequest, "", err.Error())
			return
		}
		renderServerError(c.Ctx, c.Container, err)
		return
	}

	c.renderPage(http.StatusOK, "Your message has been received.", "")
}

// renderPage 渲染联系页面，可携带成功或错误提示
func (c *ContactController) renderPage(status int, flash, errMsg string) {
	data := baseData(c.Container, "Contact")
	if flash != "" {
		data["Flash"] = flash
	}
	if errMsg != "" {
		data["FlashError"] = errMsg
	}
	c.Ctx.HTML(status, "contact.html", data)
}
