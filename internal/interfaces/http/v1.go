package http

import (
	infra "github.com/evanfuller/learntrack/internal/infrastructure"
	"github.com/labstack/echo/v4"
)

func v1Endpoint(
	UserHandler *UserHandler,
	CourseHandler *CourseHandler,
	jwtMiddleware echo.MiddlewareFunc,
	refreshMiddleware echo.MiddlewareFunc,
	requestIDMiddleware echo.MiddlewareFunc,
	traceLoggerMiddleware echo.MiddlewareFunc,
) *endpoint {
	return &endpoint{
		apiVersion:  "api/v1",
		middlewares: []echo.MiddlewareFunc{requestIDMiddleware, traceLoggerMiddleware},
		groups: []*apiGroup{
			{
				prefix: "/user",
				routes: []*route{
					{"POST", "/login", UserHandler.HandleSignIn, nil},
					{"PUT", "/sign-out", UserHandler.HandleSignOut, nil},
					{"POST", "/sign-up", UserHandler.HandleSignUp, nil},
					{"GET", "/exists", UserHandler.HandleUserExists, nil},
				},
			},
			{
				prefix: "/catalog",
				routes: []*route{
					{"GET", "/", CourseHandler.HandleListCourses, nil},
				},
			},
			{
				prefix:      "/course",
				middlewares: []echo.MiddlewareFunc{jwtMiddleware, refreshMiddleware},
				routes: []*route{
					{"GET", "/:course_id/progress", CourseHandler.HandleGetCourseProgress, nil},
					{"PUT", "/:course_id/lesson/:lesson_id/toggle", CourseHandler.HandleToggleLesson, nil},
					{"PUT", "/:course_id/complete", CourseHandler.HandleCompleteCourse, nil},
				},
			},
			{
				prefix:      "/ws",
				middlewares: []echo.MiddlewareFunc{jwtMiddleware},
				routes: []*route{
					{"GET", "/progress", infra.WithHeartbeat(CourseHandler.HandleProgressFeed), nil},
				},
			},
		},
	}
}
