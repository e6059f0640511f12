package fakeapi

import (
	"net/http"
	"slices"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/edu-platform/educlient/shared/api"
)

func (s *Server) listJobs(w http.ResponseWriter, r *http.Request) {
	page, limit, err := listParams(r)
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}
	q := r.URL.Query()
	remote, err := boolParam(q.Get("remote"), "remote")
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}
	search := q.Get("search")
	location := q.Get("location")
	types := listParam(q.Get("job_type"))

	jobs := s.Jobs.List(func(j api.Job) bool {
		return (search == "" || containsFold(j.Title, search) || containsFold(j.Description, search)) &&
			(location == "" || containsFold(j.Location, location)) &&
			(len(types) == 0 || hasAnyFold([]string{j.JobType}, types)) &&
			(remote == nil || j.Remote == *remote)
	})
	if q.Get("sort_by") == "title" {
		slices.SortStableFunc(jobs, func(a, b api.Job) int { return strings.Compare(a.Title, b.Title) })
		if !strings.EqualFold(q.Get("sort_order"), "asc") {
			slices.Reverse(jobs)
		}
	} else {
		jobs = ordered(jobs, q.Get("sort_order"))
	}

	data, p := paginate(jobs, page, limit)
	writeData(w, http.StatusOK, data, p)
}

func (s *Server) getJob(w http.ResponseWriter, r *http.Request) {
	job, ok := s.Jobs.Get(chi.URLParam(r, "id"))
	if !ok {
		writeErrorAndStatusCode(w, notFound("job"))
		return
	}
	writeData(w, http.StatusOK, job, nil)
}

// applyForJob accepts an application with an optional "resume" file part.
func (s *Server) applyForJob(w http.ResponseWriter, r *http.Request) {
	body, resume, err := parseMultipartRequest[api.JobApplication](w, r, "resume")
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}
	job, ok := s.Jobs.Get(chi.URLParam(r, "id"))
	if !ok {
		writeErrorAndStatusCode(w, notFound("job"))
		return
	}

	result := api.JobApplicationResult{ID: uuid.NewString(), JobID: job.ID, Applicant: body, Status: "received"}
	if resume != nil {
		stored, err := s.storeFile(r, result.ID, resume)
		if err != nil {
			writeErrorAndStatusCode(w, err)
			return
		}
		result.ResumeURL = stored.URL
	}
	s.Applications.Put(result.ID, result)
	writeData(w, http.StatusCreated, result, nil)
}

func (s *Server) createJob(w http.ResponseWriter, r *http.Request) {
	var body api.JobRequest
	if err := decodeValidate(r.Body, &body); err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}
	job := jobFromRequest(api.Job{ID: uuid.NewString(), PostedAt: s.now().UTC()}, body)
	s.Jobs.Put(job.ID, job)
	writeData(w, http.StatusCreated, job, nil)
}

func (s *Server) updateJob(w http.ResponseWriter, r *http.Request) {
	var body api.JobRequest
	if err := decodeValidate(r.Body, &body); err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}
	job, err := s.Jobs.Update(chi.URLParam(r, "id"), func(current api.Job, exists bool) (api.Job, error) {
		if !exists {
			return current, notFound("job")
		}
		return jobFromRequest(current, body), nil
	})
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}
	writeData(w, http.StatusOK, job, nil)
}

func (s *Server) deleteJob(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !s.Jobs.Delete(id) {
		writeErrorAndStatusCode(w, notFound("job"))
		return
	}
	writeData(w, http.StatusOK, api.DeleteResult{ID: id, Deleted: true}, nil)
}

func jobFromRequest(base api.Job, body api.JobRequest) api.Job {
	base.Title = body.Title
	base.Department = body.Department
	base.Location = body.Location
	base.JobType = body.JobType
	base.Remote = body.Remote
	base.Description = body.Description
	base.SalaryRange = body.SalaryRange
	base.Deadline = body.Deadline
	return base
}
