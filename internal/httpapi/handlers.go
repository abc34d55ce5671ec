// ABOUTME: JSON handlers mapping routes onto workout actions.
// ABOUTME: Path ids must parse as integers; everything else is validated by the actions.
package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/harperreed/lift/internal/models"
)

type workoutBody struct {
	Name string `json:"name"`
	Date string `json:"date"`
}

type exerciseBody struct {
	Name string `json:"name"`
}

type setBody struct {
	Reps   int     `json:"reps"`
	Weight float64 `json:"weight"`
}

type setPatchBody struct {
	Reps      *int     `json:"reps"`
	Weight    *float64 `json:"weight"`
	Completed *bool    `json:"completed"`
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

func queryInt(c *gin.Context, key string) (int, bool) {
	raw := c.Query(key)
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + key})
		return 0, false
	}
	return n, true
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return false
	}
	return true
}

func (s *Server) listWorkouts(c *gin.Context) {
	ctx := c.Request.Context()

	if date := c.Query("date"); date != "" {
		workouts, err := s.svc.WorkoutsByDate(ctx, date)
		if err != nil {
			s.fail(c, err)
			return
		}
		c.JSON(http.StatusOK, workouts)
		return
	}

	limit, ok := queryInt(c, "limit")
	if !ok {
		return
	}
	workouts, err := s.svc.RecentWorkouts(ctx, limit)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, workouts)
}

func (s *Server) createWorkout(c *gin.Context) {
	var body workoutBody
	if !bindJSON(c, &body) {
		return
	}

	w, err := s.svc.CreateWorkout(c.Request.Context(), body.Name, body.Date)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, w)
}

func (s *Server) getWorkout(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	w, err := s.svc.Workout(c.Request.Context(), id)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, w)
}

func (s *Server) updateWorkout(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var body workoutBody
	if !bindJSON(c, &body) {
		return
	}

	w, err := s.svc.UpdateWorkout(c.Request.Context(), id, body.Name, body.Date)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, w)
}

func (s *Server) deleteWorkout(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := s.svc.DeleteWorkout(c.Request.Context(), id); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) addExercise(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var body exerciseBody
	if !bindJSON(c, &body) {
		return
	}

	we, err := s.svc.AddExercise(c.Request.Context(), id, body.Name)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, we)
}

func (s *Server) removeExercise(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := s.svc.RemoveExercise(c.Request.Context(), id); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) addSet(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var body setBody
	if !bindJSON(c, &body) {
		return
	}

	set, err := s.svc.AddSet(c.Request.Context(), id, body.Reps, body.Weight)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, set)
}

func (s *Server) updateSet(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var body setPatchBody
	if !bindJSON(c, &body) {
		return
	}

	upd := models.SetUpdate{Reps: body.Reps, Weight: body.Weight, Completed: body.Completed}
	set, err := s.svc.UpdateSet(c.Request.Context(), id, upd)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, set)
}

func (s *Server) removeSet(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := s.svc.RemoveSet(c.Request.Context(), id); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) listExercises(c *gin.Context) {
	limit, ok := queryInt(c, "limit")
	if !ok {
		return
	}

	exercises, err := s.svc.Exercises(c.Request.Context(), c.Query("q"), limit)
	if err != nil {
		s.fail(c, err)
		return
	}
	if exercises == nil {
		exercises = []*models.Exercise{}
	}
	c.JSON(http.StatusOK, exercises)
}

func (s *Server) forgetExercise(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := s.svc.ForgetExercise(c.Request.Context(), id); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
