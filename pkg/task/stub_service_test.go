package task

import "context"

type stubService struct {
	nextId int
	tasks  []Task
}

func (s *stubService) Tasks() []Task {
	return append([]Task{}, s.tasks...)
}

func (s *stubService) AddTask(ctx context.Context, task Task) Task {
	s.nextId++
	task.ID = s.nextId
	s.tasks = append(s.tasks, task)
	return task
}

func (s *stubService) UpdateTask(ctx context.Context, id int, patch Patch) (Task, bool) {
	for i, t := range s.tasks {
		if t.ID == id {
			s.tasks[i] = patch.Apply(t)
			return s.tasks[i], true
		}
	}
	return Task{}, false
}

func (s *stubService) ToggleTask(ctx context.Context, id int) (Task, bool) {
	for i, t := range s.tasks {
		if t.ID == id {
			s.tasks[i].Status = Toggle(t.Status)
			return s.tasks[i], true
		}
	}
	return Task{}, false
}

func (s *stubService) DeleteTask(ctx context.Context, id int) bool {
	for i, t := range s.tasks {
		if t.ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return true
		}
	}
	return false
}
